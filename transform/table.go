package transform

// Row r maps color c to table[r][c]. Rows 0 and 1 are never looked up but keep
// the row index equal to the transform code.
var table = [Count][256]uint8{
	// 0: placeholder for opaque pixels
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 1: placeholder for skipped pixels
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 2: strongest shadow
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 16, 17, 18, 19, 20, 21,
		22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 36,
		36, 36, 36, 36, 36, 43, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53,
		54, 55, 56, 57, 58, 59, 60, 61, 62, 62, 62, 62, 62, 62, 62, 68,
		69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80, 81, 82, 83, 84,
		84, 84, 84, 84, 84, 91, 92, 93, 94, 95, 96, 97, 98, 99, 100, 101,
		102, 103, 104, 105, 106, 107, 107, 107, 107, 107, 107, 107, 114, 115, 116, 117,
		118, 119, 120, 121, 122, 123, 124, 125, 126, 127, 128, 129, 130, 130, 130, 130,
		130, 130, 130, 136, 137, 138, 139, 140, 141, 142, 143, 144, 145, 146, 147, 148,
		149, 150, 151, 151, 151, 151, 151, 151, 158, 159, 160, 161, 162, 163, 164, 165,
		166, 167, 168, 169, 170, 171, 172, 173, 174, 174, 174, 174, 174, 174, 174, 180,
		181, 182, 183, 184, 185, 186, 187, 188, 189, 190, 191, 192, 193, 194, 195, 196,
		197, 197, 197, 197, 197, 197, 202, 203, 204, 205, 206, 207, 208, 209, 210, 211,
		212, 213, 213, 213, 213, 213, 214, 215, 216, 217, 218, 219, 220, 221, 225, 226,
		227, 228, 229, 230, 230, 230, 230, 73, 75, 77, 79, 81, 76, 78, 74, 76,
		78, 80, 244, 245, 245, 245, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 3: strong shadow
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 14, 15, 16, 17, 18, 19,
		20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35,
		36, 36, 36, 36, 36, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51,
		52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 62, 62, 62, 62, 66,
		67, 68, 69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80, 81, 82,
		83, 84, 84, 84, 84, 89, 90, 91, 92, 93, 94, 95, 96, 97, 98, 99,
		100, 101, 102, 103, 104, 105, 106, 107, 107, 107, 107, 107, 112, 113, 114, 115,
		116, 117, 118, 119, 120, 121, 122, 123, 124, 125, 126, 127, 128, 129, 130, 130,
		130, 130, 130, 134, 135, 136, 137, 138, 139, 140, 141, 142, 143, 144, 145, 146,
		147, 148, 149, 150, 151, 151, 151, 151, 156, 157, 158, 159, 160, 161, 162, 163,
		164, 165, 166, 167, 168, 169, 170, 171, 172, 173, 174, 174, 174, 174, 174, 178,
		179, 180, 181, 182, 183, 184, 185, 186, 187, 188, 189, 190, 191, 192, 193, 194,
		195, 196, 197, 197, 197, 197, 201, 202, 203, 204, 205, 206, 207, 208, 209, 210,
		211, 212, 213, 213, 213, 213, 214, 215, 216, 217, 218, 219, 220, 221, 224, 225,
		226, 227, 228, 229, 230, 230, 230, 76, 76, 76, 76, 76, 76, 76, 76, 76,
		76, 78, 244, 245, 245, 245, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 4: weak shadow
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 12, 13, 14, 15, 16, 17,
		18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33,
		34, 35, 36, 36, 36, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49,
		50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 62, 62, 65,
		66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80, 81,
		82, 83, 84, 84, 84, 87, 88, 89, 90, 91, 92, 93, 94, 95, 96, 97,
		98, 99, 100, 101, 102, 103, 104, 105, 106, 107, 107, 107, 110, 111, 112, 113,
		114, 115, 116, 117, 118, 119, 120, 121, 122, 123, 124, 125, 126, 127, 128, 129,
		130, 130, 130, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142, 143, 144, 145,
		146, 147, 148, 149, 150, 151, 151, 151, 154, 155, 156, 157, 158, 159, 160, 161,
		162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172, 173, 174, 174, 174, 177,
		178, 179, 180, 181, 182, 183, 184, 185, 186, 187, 188, 189, 190, 191, 192, 193,
		194, 195, 196, 197, 197, 197, 200, 201, 202, 203, 204, 205, 206, 207, 208, 209,
		210, 211, 212, 213, 213, 213, 214, 215, 216, 217, 218, 219, 220, 221, 223, 224,
		225, 226, 227, 228, 229, 230, 230, 76, 76, 76, 76, 76, 76, 76, 76, 76,
		76, 76, 243, 244, 245, 245, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 5: weakest shadow
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 11, 12, 13, 14, 15, 16,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
		33, 34, 35, 36, 36, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48,
		49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 62, 64,
		65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80,
		81, 82, 83, 84, 84, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95, 96,
		97, 98, 99, 100, 101, 102, 103, 104, 105, 106, 107, 107, 109, 110, 111, 112,
		113, 114, 115, 116, 117, 118, 119, 120, 121, 122, 123, 124, 125, 126, 127, 128,
		129, 130, 130, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142, 143, 144,
		145, 146, 147, 148, 149, 150, 151, 151, 153, 154, 155, 156, 157, 158, 159, 160,
		161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172, 173, 174, 174, 176,
		177, 178, 179, 180, 181, 182, 183, 184, 185, 186, 187, 188, 189, 190, 191, 192,
		193, 194, 195, 196, 197, 197, 199, 200, 201, 202, 203, 204, 205, 206, 207, 208,
		209, 210, 211, 212, 213, 213, 214, 215, 216, 217, 218, 219, 220, 221, 223, 224,
		225, 226, 227, 228, 229, 230, 230, 75, 75, 75, 75, 75, 75, 75, 75, 75,
		75, 75, 243, 244, 245, 245, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 6: effect 6
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 10, 11, 11, 11, 12,
		13, 13, 13, 14, 14, 15, 15, 15, 16, 17, 17, 17, 18, 18, 19, 19,
		20, 20, 20, 21, 21, 11, 37, 37, 37, 38, 38, 39, 39, 39, 40, 40,
		41, 41, 41, 41, 42, 42, 19, 42, 20, 20, 20, 20, 20, 20, 21, 12,
		131, 63, 63, 63, 64, 64, 64, 65, 65, 65, 65, 65, 242, 242, 242, 242,
		242, 242, 242, 242, 242, 13, 14, 15, 15, 16, 85, 17, 85, 85, 85, 85,
		19, 86, 20, 20, 20, 21, 21, 21, 21, 21, 21, 21, 10, 108, 108, 109,
		109, 109, 110, 110, 110, 110, 199, 40, 41, 41, 41, 41, 41, 42, 42, 42,
		42, 20, 20, 11, 11, 131, 131, 132, 132, 132, 133, 133, 134, 134, 134, 135,
		135, 18, 136, 19, 19, 20, 20, 20, 10, 11, 11, 11, 12, 12, 13, 13,
		13, 14, 15, 15, 15, 16, 17, 17, 17, 18, 18, 19, 19, 20, 20, 11,
		175, 175, 176, 176, 38, 177, 177, 178, 178, 178, 179, 179, 179, 179, 180, 180,
		180, 180, 180, 180, 21, 21, 108, 108, 38, 109, 38, 109, 39, 40, 40, 41,
		41, 41, 42, 42, 42, 20, 199, 179, 180, 180, 110, 110, 40, 42, 110, 110,
		86, 86, 86, 86, 18, 18, 19, 65, 65, 65, 66, 65, 66, 65, 152, 155,
		65, 242, 15, 16, 17, 19, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 7: effect 7
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 11, 11, 12, 12, 13,
		13, 14, 15, 15, 16, 16, 17, 17, 18, 19, 20, 20, 21, 21, 22, 22,
		23, 24, 24, 25, 25, 37, 37, 38, 38, 39, 39, 40, 41, 41, 41, 42,
		42, 43, 43, 44, 44, 45, 45, 46, 46, 23, 24, 24, 24, 24, 24, 131,
		63, 63, 64, 64, 65, 65, 66, 66, 242, 67, 67, 68, 68, 243, 243, 243,
		243, 243, 243, 243, 243, 15, 15, 85, 85, 85, 85, 86, 86, 87, 87, 88,
		88, 88, 88, 89, 24, 90, 25, 25, 25, 25, 25, 25, 37, 108, 109, 109,
		110, 110, 111, 111, 200, 200, 201, 201, 42, 43, 43, 44, 44, 44, 45, 45,
		46, 46, 46, 11, 131, 132, 132, 132, 133, 133, 134, 135, 135, 136, 242, 137,
		137, 138, 243, 243, 243, 243, 243, 24, 152, 152, 153, 153, 154, 154, 155, 156,
		156, 157, 158, 158, 159, 18, 19, 19, 20, 20, 21, 22, 22, 23, 24, 37,
		175, 176, 176, 177, 177, 178, 179, 179, 180, 180, 180, 181, 181, 181, 182, 182,
		182, 46, 47, 47, 48, 25, 108, 109, 109, 109, 198, 199, 199, 201, 201, 42,
		43, 43, 44, 45, 46, 46, 201, 181, 182, 183, 111, 111, 202, 45, 111, 111,
		87, 88, 88, 88, 88, 21, 22, 66, 66, 68, 68, 67, 68, 68, 152, 157,
		66, 69, 16, 18, 20, 21, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 8: effect 8
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 11, 11, 12, 13, 14,
		14, 15, 16, 17, 17, 18, 19, 20, 20, 21, 22, 23, 24, 24, 25, 26,
		26, 27, 28, 29, 29, 37, 37, 38, 39, 40, 40, 41, 42, 42, 43, 44,
		44, 45, 46, 46, 47, 47, 48, 48, 49, 50, 50, 27, 28, 28, 28, 63,
		63, 64, 65, 65, 66, 67, 67, 68, 69, 69, 69, 70, 70, 70, 244, 71,
		244, 244, 244, 244, 245, 16, 85, 85, 86, 87, 87, 88, 88, 89, 90, 90,
		91, 91, 91, 92, 93, 93, 93, 29, 29, 29, 29, 29, 37, 109, 109, 110,
		111, 111, 112, 113, 112, 112, 203, 203, 203, 44, 45, 46, 47, 47, 47, 48,
		48, 49, 50, 131, 131, 132, 133, 133, 134, 135, 136, 136, 137, 137, 139, 139,
		139, 141, 141, 141, 143, 143, 245, 245, 152, 152, 153, 154, 155, 155, 156, 157,
		158, 158, 159, 160, 161, 162, 163, 163, 164, 165, 165, 166, 26, 26, 27, 175,
		13, 176, 177, 178, 178, 179, 180, 181, 181, 182, 182, 183, 183, 183, 184, 184,
		185, 185, 50, 50, 52, 52, 109, 109, 198, 199, 200, 201, 201, 202, 202, 44,
		45, 46, 47, 48, 48, 49, 204, 205, 185, 185, 112, 112, 204, 47, 112, 113,
		88, 89, 91, 92, 93, 93, 25, 66, 68, 69, 69, 68, 69, 69, 153, 159,
		68, 71, 18, 242, 243, 24, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 9: effect 9
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 11, 12, 13, 13, 14,
		15, 16, 17, 17, 19, 19, 20, 21, 22, 23, 24, 24, 26, 26, 27, 28,
		28, 30, 30, 31, 32, 37, 38, 39, 39, 40, 41, 42, 43, 43, 44, 45,
		46, 46, 47, 48, 49, 50, 50, 51, 52, 52, 53, 54, 54, 30, 31, 63,
		64, 64, 65, 66, 67, 68, 69, 69, 70, 71, 71, 71, 72, 72, 72, 73,
		73, 73, 168, 168, 168, 85, 85, 86, 87, 88, 88, 89, 90, 91, 91, 92,
		93, 93, 94, 95, 95, 96, 96, 96, 31, 32, 32, 32, 108, 109, 198, 110,
		111, 112, 113, 113, 113, 116, 117, 118, 119, 120, 121, 47, 48, 50, 50, 51,
		51, 52, 52, 131, 132, 132, 133, 134, 135, 136, 137, 137, 138, 139, 140, 141,
		141, 143, 143, 144, 145, 146, 147, 30, 152, 153, 153, 154, 155, 156, 157, 158,
		158, 159, 160, 161, 162, 163, 164, 165, 165, 166, 167, 168, 169, 28, 29, 175,
		176, 177, 177, 178, 179, 180, 181, 182, 182, 183, 184, 185, 185, 185, 186, 186,
		187, 50, 52, 52, 54, 55, 109, 198, 199, 200, 201, 202, 202, 204, 204, 205,
		207, 47, 49, 50, 51, 52, 206, 206, 187, 188, 113, 113, 118, 49, 222, 222,
		223, 224, 225, 226, 95, 227, 228, 67, 68, 70, 71, 69, 71, 70, 153, 65,
		69, 73, 242, 22, 243, 244, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// 10: effect 10
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 11, 11, 12, 12, 13,
		14, 14, 15, 16, 16, 17, 18, 18, 19, 20, 242, 242, 22, 22, 23, 243,
		243, 25, 244, 244, 244, 11, 37, 38, 38, 39, 40, 40, 41, 178, 18, 19,
		20, 20, 21, 21, 22, 22, 22, 22, 22, 23, 23, 23, 23, 24, 244, 63,
		63, 64, 64, 65, 65, 66, 66, 67, 67, 68, 68, 68, 69, 69, 69, 69,
		69, 69, 70, 70, 70, 15, 15, 16, 85, 86, 18, 19, 19, 20, 159, 21,
		21, 161, 22, 163, 163, 163, 23, 23, 165, 165, 244, 244, 37, 108, 38, 109,
		109, 110, 199, 200, 199, 40, 41, 42, 42, 42, 43, 43, 44, 22, 22, 23,
		23, 23, 23, 131, 131, 132, 132, 133, 133, 134, 134, 135, 135, 136, 136, 137,
		137, 138, 138, 139, 139, 140, 141, 244, 152, 152, 153, 153, 154, 154, 155, 155,
		156, 156, 157, 158, 158, 159, 242, 159, 161, 161, 243, 243, 243, 243, 164, 11,
		175, 176, 176, 177, 177, 178, 179, 179, 180, 180, 181, 181, 182, 182, 182, 182,
		183, 22, 23, 23, 23, 23, 108, 38, 38, 39, 39, 40, 40, 41, 178, 180,
		42, 44, 45, 23, 23, 23, 180, 181, 181, 183, 110, 200, 42, 45, 85, 86,
		87, 87, 87, 21, 22, 22, 23, 66, 66, 67, 68, 67, 68, 68, 153, 158,
		67, 70, 64, 65, 242, 243, 159, 159, 159, 159, 159, 159, 159, 159, 159, 10,
	},
	// 11: effect 11
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 11, 11, 12, 13, 14,
		14, 15, 16, 16, 17, 18, 19, 19, 20, 242, 22, 22, 243, 243, 243, 244,
		244, 244, 244, 245, 245, 37, 37, 38, 176, 39, 177, 41, 41, 42, 179, 20,
		180, 45, 22, 23, 23, 24, 24, 24, 24, 25, 25, 25, 25, 26, 26, 63,
		63, 64, 64, 65, 66, 67, 67, 68, 68, 69, 69, 70, 70, 70, 70, 70,
		71, 71, 71, 71, 71, 15, 85, 85, 86, 86, 87, 20, 88, 89, 22, 161,
		162, 163, 163, 164, 164, 165, 165, 166, 166, 167, 167, 167, 37, 108, 109, 109,
		110, 199, 111, 111, 200, 201, 41, 43, 43, 43, 44, 44, 46, 46, 24, 24,
		25, 25, 25, 131, 131, 132, 132, 133, 134, 135, 135, 136, 136, 137, 138, 138,
		139, 139, 140, 140, 141, 141, 142, 143, 152, 152, 153, 153, 154, 155, 155, 156,
		156, 157, 158, 158, 159, 159, 161, 161, 162, 162, 163, 164, 244, 244, 244, 175,
		175, 176, 177, 177, 178, 179, 179, 180, 181, 181, 182, 182, 183, 183, 183, 184,
		184, 184, 25, 25, 25, 25, 108, 109, 109, 39, 40, 41, 41, 42, 42, 43,
		43, 45, 46, 47, 25, 25, 181, 182, 183, 185, 111, 111, 42, 46, 111, 87,
		88, 88, 88, 22, 23, 24, 25, 66, 67, 68, 69, 68, 69, 69, 153, 0,
		68, 71, 65, 242, 242, 243, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10,
	},
	// 12: effect 12
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 11, 11, 13, 13, 14,
		15, 16, 16, 17, 18, 19, 20, 21, 21, 22, 23, 243, 25, 244, 244, 244,
		28, 245, 245, 245, 31, 37, 38, 38, 39, 40, 41, 41, 42, 42, 180, 45,
		46, 46, 47, 47, 25, 26, 26, 26, 26, 27, 27, 27, 27, 27, 245, 63,
		63, 64, 65, 66, 66, 67, 68, 69, 69, 70, 70, 71, 71, 72, 72, 72,
		72, 72, 73, 73, 73, 16, 85, 85, 86, 87, 88, 88, 90, 90, 91, 91,
		163, 164, 164, 165, 166, 166, 167, 167, 168, 169, 169, 170, 37, 108, 109, 198,
		199, 111, 112, 112, 201, 202, 202, 43, 44, 45, 45, 46, 46, 47, 48, 26,
		27, 27, 27, 131, 131, 132, 133, 134, 135, 135, 136, 137, 137, 138, 139, 139,
		140, 141, 141, 142, 143, 143, 144, 145, 152, 152, 153, 154, 155, 155, 156, 156,
		158, 158, 159, 160, 160, 161, 162, 163, 164, 164, 165, 166, 166, 167, 167, 175,
		176, 176, 177, 178, 178, 179, 180, 181, 182, 182, 183, 184, 184, 184, 185, 186,
		186, 50, 51, 27, 27, 27, 109, 109, 109, 40, 40, 41, 42, 43, 43, 44,
		45, 46, 47, 49, 27, 27, 182, 183, 184, 187, 112, 112, 43, 47, 112, 87,
		89, 90, 91, 91, 24, 26, 26, 67, 68, 69, 70, 69, 70, 70, 153, 0,
		0, 73, 65, 242, 243, 244, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10,
	},
	// 13: effect 13
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 11, 12, 13, 13, 14,
		15, 16, 17, 18, 19, 20, 21, 21, 23, 243, 24, 25, 244, 244, 27, 245,
		245, 31, 170, 149, 149, 37, 38, 38, 39, 40, 41, 42, 42, 44, 45, 46,
		46, 47, 48, 49, 50, 51, 28, 28, 28, 29, 29, 29, 29, 29, 30, 63,
		64, 65, 65, 66, 67, 68, 69, 70, 70, 71, 72, 72, 73, 73, 74, 74,
		75, 75, 76, 76, 76, 85, 85, 86, 87, 88, 89, 90, 91, 91, 92, 93,
		93, 166, 166, 96, 168, 168, 169, 170, 170, 171, 171, 171, 37, 109, 109, 110,
		200, 111, 112, 113, 202, 202, 203, 44, 45, 46, 46, 47, 48, 49, 50, 51,
		52, 29, 29, 131, 132, 133, 133, 134, 135, 136, 137, 138, 139, 139, 140, 141,
		142, 142, 144, 144, 145, 145, 146, 147, 152, 153, 153, 154, 155, 156, 157, 158,
		159, 159, 160, 161, 162, 163, 164, 164, 165, 166, 167, 168, 168, 168, 169, 175,
		176, 177, 177, 178, 179, 180, 181, 182, 182, 183, 184, 185, 186, 186, 187, 187,
		189, 189, 193, 193, 146, 146, 109, 109, 198, 199, 201, 201, 201, 44, 205, 45,
		46, 47, 48, 50, 52, 29, 183, 185, 186, 189, 112, 112, 205, 49, 222, 88,
		89, 91, 92, 93, 26, 27, 28, 67, 68, 70, 71, 69, 71, 71, 154, 0,
		0, 75, 242, 242, 243, 244, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10,
	},
	// 14: mirrored ramps
	{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 36, 35, 34, 33, 32, 31,
		30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 18, 17, 16, 15,
		14, 13, 12, 11, 10, 61, 60, 59, 58, 57, 56, 55, 54, 53, 52, 51,
		50, 49, 48, 47, 46, 45, 44, 43, 42, 41, 40, 39, 38, 37, 84, 83,
		82, 81, 80, 79, 78, 77, 76, 75, 74, 73, 72, 71, 70, 69, 68, 67,
		66, 65, 64, 63, 62, 107, 106, 105, 104, 103, 102, 101, 100, 99, 98, 97,
		96, 95, 94, 93, 92, 91, 90, 89, 88, 87, 86, 85, 130, 129, 128, 127,
		126, 125, 124, 123, 122, 121, 120, 119, 118, 117, 116, 115, 114, 113, 112, 111,
		110, 109, 108, 151, 150, 149, 148, 147, 146, 145, 144, 143, 142, 141, 140, 139,
		138, 137, 136, 135, 134, 133, 132, 131, 172, 171, 170, 169, 168, 167, 166, 165,
		164, 163, 162, 161, 160, 159, 158, 157, 156, 155, 154, 153, 152, 197, 196, 195,
		194, 193, 192, 191, 190, 189, 188, 187, 186, 185, 184, 183, 182, 181, 180, 179,
		178, 177, 176, 175, 174, 173, 213, 212, 211, 210, 209, 208, 207, 206, 205, 204,
		203, 202, 201, 200, 199, 198, 214, 215, 216, 217, 218, 219, 220, 221, 222, 223,
		224, 225, 226, 227, 228, 229, 230, 231, 232, 233, 234, 235, 236, 237, 238, 239,
		240, 241, 242, 243, 244, 245, 246, 247, 248, 249, 250, 251, 252, 253, 254, 255,
	},
	// 15: no color cycling
	{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
		32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47,
		48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63,
		64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79,
		80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95,
		96, 97, 98, 99, 100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111,
		112, 113, 114, 115, 116, 117, 118, 119, 120, 121, 122, 123, 124, 125, 126, 127,
		128, 129, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142, 143,
		144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 155, 156, 157, 158, 159,
		160, 161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172, 173, 174, 175,
		176, 177, 178, 179, 180, 181, 182, 183, 184, 185, 186, 187, 188, 189, 190, 191,
		192, 193, 194, 195, 196, 197, 198, 199, 200, 201, 202, 203, 204, 205, 206, 207,
		208, 209, 210, 211, 212, 213, 188, 189, 190, 191, 164, 165, 166, 167, 222, 223,
		224, 225, 226, 227, 228, 229, 230, 72, 73, 74, 75, 130, 129, 128, 172, 171,
		170, 169, 242, 243, 244, 245, 246, 247, 248, 249, 250, 251, 252, 253, 254, 255,
	},
}
