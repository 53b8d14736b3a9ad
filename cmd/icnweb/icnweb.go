// Command icnweb serves rendered ICN sprites as PNG images.
//
//	GET /icn/{name}?width=16&height=16&op=gradient&shadow=4,2
//
// Sprite streams and the palette are located with package paths, so the
// embedded demo sprite is always available as /icn/demo.icn.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"net/http"
	"os"
	"runtime"
	"strconv"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/net/trace"

	"badc0de.net/pkg/go-icn/datafiles"
	"badc0de.net/pkg/go-icn/icn"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/paths"
	"badc0de.net/pkg/go-icn/render"
)

var (
	listenAddress  = flag.String("listen_address", ":8080", "http listen address for icnweb")
	debugWebServer = flag.String("debug_web_server_listen_address", "", "where the debug server will listen")

	palPath string
)

type server struct {
	pal *palette.Palette
}

func intParam(r *http.Request, name string, def int) (int, error) {
	s := r.FormValue(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parameter %s", name)
	}
	return v, nil
}

func (s *server) options(r *http.Request) (render.Options, error) {
	o := render.DefaultOptions()
	var err error
	if v := r.FormValue("op"); v != "" {
		if o.Op, err = render.ParseOp(v); err != nil {
			return o, err
		}
	}
	if v := r.FormValue("shadow"); v != "" {
		if o.Shadow, err = render.ParsePoint(v); err != nil {
			return o, err
		}
	}
	if v := r.FormValue("scale"); v != "" {
		if o.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return o, errors.Wrap(err, "parameter scale")
		}
	}
	o.Subpixel = r.FormValue("subpixel") == "1"
	bg, err := intParam(r, "bg", 0)
	if err != nil {
		return o, err
	}
	o.Background = uint8(bg)
	return o, nil
}

func (s *server) icnHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	tr := trace.New("icnweb.render", name)
	defer tr.Finish()

	width, err := intParam(r, "width", datafiles.DemoSpriteWidth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := intParam(r, "height", datafiles.DemoSpriteHeight)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := render.CheckSize(width, height); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := s.options(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := paths.ReadFile(name)
	if err != nil {
		tr.LazyPrintf("opening %s: %v", name, err)
		tr.SetError()
		http.Error(w, "failed to open data file", http.StatusNotFound)
		return
	}

	sprite, stats := icn.DecodeWithStats(data, width, height, 0, 0)
	tr.LazyPrintf("decoded %dx%d: %+v", width, height, stats)

	img, err := render.Image(s.pal, sprite, o)
	if err != nil {
		tr.LazyPrintf("rendering: %v", err)
		tr.SetError()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		glog.Errorf("writing %s: %v", name, err)
	}
}

func (s *server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/icn/{name}", s.icnHandler).Methods(http.MethodGet)
	return r
}

func main() {
	paths.SetupFilePathFlag(datafiles.DemoPalette, "pal", &palPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	vga, err := paths.ReadFile(palPath)
	if err != nil {
		glog.Exitf("reading palette: %v", err)
	}
	pal, err := palette.New(vga)
	if err != nil {
		glog.Exitf("%v", err)
	}
	pal.Prepare()

	if *debugWebServer != "" {
		debug := http.NewServeMux()
		debug.HandleFunc("/debug/minimetrics", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "runtime.NumGoroutine(): %d\n", runtime.NumGoroutine())
		})
		debug.HandleFunc("/debug/requests", trace.Traces)
		go func() {
			glog.Error(http.ListenAndServe(*debugWebServer, debug))
		}()
	}

	s := &server{pal: pal}
	glog.Infof("icnweb listening on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.LoggingHandler(os.Stderr, s.router())))
}
