package has

// generatorMatrix is the 255x32 GF(256) generator matrix of the HAS
// Reed-Solomon code.  Row p-1 produces the page with page ID p.  Rows 0-31
// are the identity, so pages 1 to MS carry the message itself.
var generatorMatrix = [255][32]byte{
	{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
	{0x13, 0x8f, 0xb4, 0x3b, 0xdd, 0x1d, 0x31, 0x2d, 0xe7, 0x09, 0x49, 0x49, 0x9f, 0x02, 0x9e, 0x88, 0xd4, 0xda, 0x0e, 0x71, 0xd7, 0x14, 0xbb, 0x37, 0x89, 0xb5, 0xcb, 0x71, 0x61, 0x87, 0x0e, 0xfb},
	{0x1b, 0x1b, 0x01, 0x32, 0xff, 0x6d, 0xfb, 0x9c, 0x94, 0x97, 0x55, 0x15, 0x4a, 0x74, 0xfa, 0x4d, 0x3c, 0xcb, 0x71, 0xc4, 0xd5, 0x17, 0xca, 0x7d, 0x1f, 0xfc, 0x5a, 0x01, 0xb0, 0xe2, 0x2c, 0xfc},
	{0x62, 0x99, 0xbe, 0x26, 0xdf, 0x1c, 0x1c, 0x95, 0xaa, 0xdb, 0x29, 0xeb, 0xec, 0xaf, 0x71, 0xb6, 0xef, 0x1f, 0x4a, 0xf1, 0x7f, 0x79, 0xcf, 0x89, 0xcd, 0x46, 0x58, 0xda, 0xfa, 0x81, 0x63, 0x05},
	{0x5f, 0xeb, 0xc7, 0x69, 0xa8, 0xb6, 0xe9, 0x85, 0xc9, 0x87, 0xab, 0x59, 0x32, 0xe6, 0x73, 0xe3, 0x15, 0x7a, 0x29, 0xe2, 0x5d, 0x3b, 0x14, 0x24, 0x1e, 0x96, 0x86, 0xf0, 0x22, 0x5b, 0xb7, 0x53},
	{0xac, 0xab, 0xa3, 0x7b, 0x1b, 0x51, 0x0e, 0xfb, 0x18, 0x38, 0x0f, 0x23, 0xf4, 0x94, 0x18, 0x23, 0x60, 0xc3, 0x2f, 0xe8, 0x94, 0x55, 0x75, 0x5b, 0x27, 0x05, 0x4a, 0x47, 0x68, 0x74, 0x0e, 0x80},
	{0x75, 0x6c, 0xa7, 0x6f, 0xc9, 0x3d, 0xf4, 0x0d, 0x05, 0xec, 0x4b, 0x7c, 0x0b, 0xe9, 0x3c, 0x7f, 0x65, 0x75, 0x90, 0x0d, 0x33, 0x46, 0x8a, 0xf7, 0xbc, 0xab, 0x78, 0x68, 0x8d, 0xdc, 0x27, 0x56},
	{0xf3, 0x08, 0x7a, 0xcc, 0x93, 0x59, 0x70, 0x7f, 0xcc, 0xd9, 0x14, 0xb3, 0x08, 0xa7, 0xcb, 0xfe, 0x5f, 0x26, 0x16, 0xf9, 0xd7, 0x7f, 0x65, 0x2e, 0x63, 0xfc, 0xb7, 0x11, 0x08, 0x7a, 0xbf, 0x20},
	{0x5a, 0xc3, 0x0b, 0x49, 0x6e, 0x14, 0x37, 0xb9, 0xce, 0xf1, 0x0c, 0xc1, 0xb9, 0x48, 0x8d, 0x1b, 0x61, 0x1d, 0xfb, 0x90, 0x06, 0x6d, 0x81, 0xcb, 0xde, 0x40, 0xa4, 0x31, 0xad, 0x25, 0xa7, 0xa9},
	{0xa4, 0x29, 0xb1, 0x0a, 0x22, 0x3a, 0x7b, 0xa5, 0x7a, 0x46, 0x6c, 0x91, 0xf0, 0xf6, 0xd0, 0x86, 0xf8, 0x72, 0xed, 0x81, 0x95, 0xda, 0x46, 0x3f, 0x69, 0x05, 0xb8, 0xde, 0x09, 0xff, 0xd5, 0x99},
	{0xd3, 0xff, 0xd7, 0x14, 0x92, 0x3c, 0x0c, 0xca, 0x01, 0x5f, 0xea, 0xc0, 0xaf, 0xdf, 0x51, 0x63, 0x3b, 0x88, 0xbf, 0x52, 0x8a, 0xae, 0x70, 0x01, 0x15, 0x0e, 0x89, 0x07, 0x04, 0xee, 0x32, 0xf6},
	{0xdc, 0x5e, 0xe6, 0x43, 0xf8, 0xa3, 0xba, 0x4d, 0x44, 0x14, 0x01, 0xb4, 0x96, 0x5e, 0x7f, 0x24, 0x9a, 0x2f, 0x65, 0x72, 0xac, 0xae, 0xac, 0xf8, 0x82, 0xfa, 0x37, 0x44, 0x11, 0x6a, 0x03, 0x7b},
	{0x6e, 0x14, 0xdc, 0xac, 0x35, 0x6e, 0xe0, 0x14, 0x0a, 0xc0, 0x3b, 0x2e, 0x9f, 0x60, 0x0e, 0xcb, 0xd6, 0x90, 0xd7, 0x8d, 0x0d, 0xbe, 0xaf, 0xe8, 0x37, 0x7b, 0x68, 0xdf, 0x4f, 0x26, 0x92, 0xa9},
	{0xa4, 0x1d, 0x66, 0xdd, 0xc7, 0x61, 0x01, 0x72, 0xd7, 0x82, 0x5d, 0xa6, 0x1f, 0xd0, 0xf8, 0x05, 0x28, 0xc5, 0x60, 0xad, 0x88, 0xd1, 0x95, 0x11, 0x4a, 0xec, 0x83, 0x12, 0xe7, 0x1d, 0xd6, 0xac},
	{0xfb, 0x5e, 0x31, 0xb0, 0x38, 0xfa, 0xfb, 0x0a, 0xed, 0x72, 0x6f, 0xb0, 0x4e, 0x5a, 0x94, 0x61, 0x45, 0xae, 0x03, 0xb2, 0x04, 0x10, 0x97, 0xc0, 0x24, 0xca, 0xd4, 0x51, 0xd2, 0x14, 0xdb, 0xd8},
	{0x74, 0x4f, 0x12, 0xc9, 0xac, 0x28, 0x21, 0xe8, 0x36, 0xbb, 0x20, 0x3d, 0x05, 0xe3, 0x37, 0x12, 0x2b, 0x6b, 0xca, 0xdc, 0x8d, 0x42, 0xe0, 0xa6, 0x9e, 0xb0, 0x3d, 0x0b, 0x8f, 0xe8, 0x70, 0x2f},
	{0xbb, 0xc2, 0xae, 0x45, 0xe4, 0x90, 0x44, 0x5e, 0xbd, 0x7c, 0xfe, 0x65, 0x41, 0x5b, 0xb0, 0x4c, 0x75, 0xcb, 0xec, 0xa9, 0xca, 0xfb, 0x0b, 0x6e, 0xf2, 0x50, 0xb5, 0x5e, 0xa2, 0x5c, 0x6f, 0x36},
	{0x1d, 0x96, 0xd1, 0x90, 0x42, 0xe0, 0x6f, 0x89, 0x51, 0x26, 0xe6, 0x64, 0x0f, 0x2d, 0x07, 0x1f, 0xd0, 0xf0, 0xd2, 0x12, 0x6f, 0x55, 0xc7, 0x40, 0xf7, 0xd7, 0xa4, 0x4b, 0xe7, 0x22, 0x45, 0x52},
	{0xbf, 0x66, 0x6a, 0x56, 0x3f, 0xa6, 0x69, 0x50, 0xf3, 0xa9, 0xe7, 0x27, 0x56, 0xab, 0x4d, 0xdf, 0x48, 0xdc, 0xab, 0x62, 0xb3, 0x73, 0xa0, 0xbf, 0xca, 0x59, 0xc0, 0x14, 0xb2, 0x36, 0x79, 0x89},
	{0xfe, 0xfc, 0x17, 0x58, 0x9f, 0xec, 0xa7, 0x32, 0x22, 0x46, 0xe1, 0xaf, 0x1c, 0x59, 0x19, 0x96, 0xa3, 0x19, 0xf1, 0x57, 0x98, 0xd5, 0xa6, 0xb0, 0xed, 0x32, 0xf9, 0x3c, 0x90, 0xcd, 0x1b, 0x51},
	{0x8a, 0x09, 0xc1, 0xdd, 0x8d, 0x5c, 0x36, 0xef, 0x7c, 0xc1, 0x5c, 0xfb, 0x21, 0xbe, 0x86, 0x44, 0xa0, 0xdc, 0x50, 0xd2, 0x92, 0xb8, 0xf0, 0x87, 0xbc, 0x81, 0x65, 0xda, 0x66, 0xd5, 0x84, 0xc7},
	{0xb8, 0xa0, 0x28, 0xca, 0x1f, 0xeb, 0xb2, 0x79, 0xe1, 0xcd, 0xe7, 0x7a, 0x3d, 0xb2, 0xbf, 0xc3, 0x37, 0x0d, 0x02, 0x29, 0xf5, 0x45, 0x80, 0xb6, 0x05, 0x5a, 0x07, 0x1c, 0x4f, 0x3a, 0x0b, 0x2b},
	{0xf7, 0x08, 0xab, 0x93, 0xb4, 0x57, 0x43, 0x79, 0x97, 0x8f, 0xb1, 0x9b, 0x40, 0x6b, 0xa3, 0xde, 0xd3, 0x98, 0xb2, 0xb8, 0x44, 0xd3, 0xda, 0xd2, 0xfc, 0x25, 0x54, 0xbd, 0x2c, 0xba, 0x85, 0x86},
	{0x1f, 0x32, 0x9b, 0xfd, 0xd5, 0xdc, 0x54, 0xae, 0xef, 0x55, 0x57, 0x69, 0xd6, 0x51, 0xa0, 0xd3, 0x5a, 0x20, 0xef, 0xab, 0xab, 0xee, 0xb1, 0xea, 0x24, 0xe9, 0xd8, 0x4d, 0x2c, 0xad, 0xcd, 0xfd},
	{0x71, 0x12, 0x23, 0x87, 0xcd, 0x2b, 0x9c, 0x17, 0x7f, 0xa9, 0xa2, 0xa0, 0x0f, 0x31, 0xca, 0x64, 0xa5, 0xa3, 0xaf, 0x1e, 0xc7, 0x13, 0x8d, 0xc5, 0xd3, 0xc8, 0x86, 0x29, 0xd7, 0x9a, 0x22, 0x1f},
	{0xcc, 0xef, 0x7f, 0xd0, 0x59, 0xbb, 0x1e, 0xc0, 0x25, 0x98, 0xdd, 0xd6, 0xd3, 0x31, 0x5d, 0x09, 0x5d, 0x26, 0x19, 0x09, 0x06, 0x56, 0xdb, 0xfa, 0x19, 0xa1, 0xb9, 0x20, 0x62, 0xb1, 0x20, 0x79},
	{0x48, 0x07, 0x18, 0x43, 0x01, 0xf5, 0x9a, 0xea, 0x54, 0xb3, 0x25, 0x60, 0xde, 0x21, 0x40, 0xe4, 0x4e, 0xfe, 0xc2, 0x13, 0xc5, 0x3c, 0x3c, 0xf1, 0x3a, 0x97, 0xb8, 0xb3, 0xe9, 0x46, 0x55, 0x61},
	{0xfd, 0x97, 0xb6, 0x76, 0x65, 0x88, 0x76, 0xf1, 0xc3, 0x1a, 0x98, 0x0e, 0xe1, 0x1c, 0xc1, 0xa5, 0x8c, 0x52, 0x8a, 0x24, 0xd8, 0x02, 0x98, 0xe4, 0x75, 0xea, 0xb4, 0x5e, 0x0b, 0x19, 0x32, 0x94},
	{0x14, 0x23, 0xfe, 0x01, 0xc6, 0xfa, 0xde, 0x2b, 0x62, 0x83, 0xb4, 0x36, 0x65, 0xd4, 0xe3, 0xd4, 0x55, 0xf7, 0xd9, 0x32, 0x75, 0x07, 0x74, 0x91, 0x65, 0x88, 0xb0, 0x0c, 0x53, 0x01, 0x92, 0xaa},
	{0x91, 0xeb, 0x90, 0xb2, 0x10, 0xb5, 0xc6, 0x3b, 0xdc, 0xf1, 0xc5, 0xf2, 0xbb, 0x2c, 0xf3, 0x6d, 0x56, 0x35, 0x15, 0x30, 0x53, 0x95, 0xfc, 0x93, 0xb5, 0x7c, 0x30, 0x59, 0x97, 0x95, 0xe3, 0xbc},
	{0xd6, 0x73, 0x48, 0xd1, 0x06, 0xe0, 0x18, 0x27, 0x72, 0xe9, 0xf8, 0xcc, 0x1f, 0xde, 0x7d, 0x02, 0xec, 0xf1, 0x13, 0x84, 0x68, 0x96, 0xac, 0xfe, 0xde, 0xaa, 0x68, 0xa1, 0xc7, 0xfc, 0xb3, 0xe6},
	{0xf1, 0x43, 0xe5, 0x4b, 0x6c, 0xfa, 0x51, 0xb3, 0x7f, 0xf7, 0x53, 0x42, 0x9f, 0xce, 0x6b, 0x60, 0x3a, 0xd9, 0xfc, 0x9d, 0x8b, 0x11, 0xeb, 0x73, 0x05, 0xae, 0xbf, 0xe6, 0xe9, 0x31, 0xf1, 0xf1},
	{0xa5, 0xf6, 0x71, 0xd0, 0x8e, 0x0e, 0xeb, 0xd3, 0xb2, 0x55, 0x4b, 0xef, 0xee, 0x60, 0x93, 0x81, 0x8f, 0x12, 0x1e, 0x7b, 0x7c, 0xc3, 0x15, 0xe6, 0x68, 0xc6, 0xdc, 0x38, 0xca, 0x35, 0xf6, 0x63},
	{0xdb, 0x79, 0x32, 0x69, 0x51, 0x3d, 0xef, 0xda, 0x29, 0xee, 0xec, 0xf2, 0x4d, 0x28, 0xa1, 0x7b, 0x5c, 0x3a, 0x7a, 0x1a, 0x03, 0x93, 0x0c, 0xa3, 0x6d, 0xcf, 0x6e, 0xd8, 0x42, 0x29, 0x5d, 0xdc},
	{0x38, 0x69, 0xdf, 0x26, 0x26, 0x35, 0x22, 0x48, 0x5d, 0x5b, 0x85, 0x87, 0x01, 0xe8, 0x07, 0x3d, 0x46, 0x3d, 0x66, 0x7c, 0x5e, 0x15, 0xb5, 0xe1, 0xe3, 0x17, 0x33, 0x68, 0x9f, 0x5e, 0x75, 0x62},
	{0xc8, 0x6b, 0x19, 0xfc, 0x7a, 0x88, 0xe5, 0x3e, 0x55, 0x08, 0xab, 0x75, 0xba, 0xc5, 0xb7, 0x67, 0x34, 0x29, 0x5b, 0x13, 0xd3, 0xa5, 0x61, 0x34, 0xe3, 0xf1, 0x74, 0x46, 0x73, 0xfb, 0x38, 0xa4},
	{0x63, 0x3e, 0x8e, 0x0a, 0xbf, 0xaf, 0x87, 0x9b, 0xca, 0xb8, 0x97, 0x34, 0x11, 0xef, 0x05, 0x1a, 0xc9, 0x2c, 0x9f, 0x26, 0x4c, 0xeb, 0x52, 0x91, 0x3d, 0xa2, 0xdf, 0x09, 0xa9, 0xcc, 0x4d, 0xbd},
	{0xc5, 0x0e, 0x29, 0xf4, 0x63, 0x52, 0x33, 0x4b, 0x35, 0xf6, 0xf8, 0xd7, 0x46, 0x76, 0x20, 0x7c, 0x4f, 0xb4, 0x04, 0x7f, 0xa9, 0x9d, 0x69, 0x67, 0x55, 0x97, 0x7d, 0x3f, 0xf6, 0x45, 0xe4, 0xb3},
	{0x37, 0xa1, 0x4f, 0x0c, 0xcf, 0x28, 0xfd, 0x64, 0xe6, 0x77, 0x6f, 0x61, 0x4c, 0x3d, 0x5e, 0x7a, 0x05, 0x4a, 0xc8, 0x70, 0xce, 0xa0, 0x13, 0x4b, 0x8e, 0xa7, 0xde, 0x09, 0xb4, 0x63, 0x39, 0xb1},
	{0x11, 0x50, 0x95, 0x1c, 0x90, 0xbe, 0xe5, 0xf0, 0x1a, 0xb6, 0x7c, 0x64, 0xd9, 0x33, 0x34, 0x09, 0xb6, 0xa9, 0x2a, 0x5e, 0x72, 0xef, 0x45, 0x5f, 0xad, 0x0b, 0x65, 0x48, 0x40, 0x32, 0x03, 0x87},
	{0x0c, 0x5b, 0x77, 0xf8, 0x87, 0xe5, 0x8c, 0x25, 0x81, 0xd1, 0x27, 0xed, 0xb6, 0xca, 0x66, 0xcc, 0x59, 0x9f, 0xd0, 0x42, 0x9a, 0xcc, 0x36, 0x42, 0x20, 0x0d, 0x3d, 0x0d, 0xb8, 0x46, 0x4b, 0x80},
	{0x75, 0xcc, 0x57, 0xbb, 0x4a, 0xa1, 0x40, 0x8f, 0xdb, 0x75, 0xa2, 0x54, 0xc5, 0xab, 0x62, 0x01, 0x8a, 0x4c, 0xcc, 0xf2, 0x99, 0x48, 0x13, 0xb4, 0xa5, 0xac, 0x70, 0x1f, 0xc7, 0x0c, 0x15, 0x13},
	{0x18, 0xe1, 0x82, 0x8d, 0x90, 0xa0, 0xc5, 0xdd, 0x6d, 0x50, 0x4a, 0x9d, 0xed, 0xe3, 0x01, 0x8f, 0xa1, 0xd8, 0xbe, 0x1c, 0x67, 0xf8, 0xe7, 0x1d, 0x4a, 0xf8, 0xc0, 0xa0, 0xe2, 0xcb, 0xfe, 0x0e},
	{0xf2, 0x11, 0xb7, 0xdd, 0xdf, 0x36, 0x93, 0x5e, 0xde, 0x13, 0x89, 0x93, 0x74, 0xf1, 0x04, 0x22, 0xa3, 0xd9, 0x8c, 0x2a, 0x22, 0xbf, 0xf4, 0xf0, 0x30, 0x12, 0x6e, 0x54, 0xd4, 0x9b, 0x9f, 0x55},
	{0xc6, 0x03, 0xc6, 0x91, 0x5b, 0x68, 0x28, 0x6f, 0xab, 0x19, 0x30, 0xaa, 0x5b, 0xde, 0x6c, 0x43, 0x63, 0x93, 0xa8, 0x76, 0x94, 0x52, 0x4c, 0x09, 0xe2, 0xb2, 0x4e, 0x94, 0x97, 0xb7, 0xea, 0x88},
	{0xed, 0x0a, 0xc6, 0xcf, 0x85, 0x95, 0x58, 0x5e, 0xfa, 0x17, 0x18, 0x31, 0x0e, 0x56, 0xf2, 0x3f, 0xeb, 0xe8, 0xb0, 0x25, 0x5b, 0xe6, 0x3c, 0x6b, 0xd2, 0xaf, 0xd9, 0xc3, 0x71, 0x6f, 0x94, 0x39},
	{0xfc, 0x46, 0xfb, 0x9c, 0x47, 0x3a, 0x68, 0x23, 0xb5, 0x16, 0x1d, 0x12, 0x2d, 0x7c, 0x73, 0xf6, 0x5b, 0xcc, 0xab, 0xab, 0x0a, 0x08, 0x6d, 0x57, 0x56, 0x1a, 0x06, 0xc2, 0x6f, 0x0f, 0x2c, 0xf9},
	{0x3d, 0xf7, 0xbd, 0x0b, 0xff, 0xcd, 0xbe, 0x9f, 0x49, 0xd7, 0xd8, 0xd3, 0x32, 0xc2, 0xa5, 0xad, 0xf7, 0xed, 0x7b, 0x83, 0xbc, 0xe2, 0xbd, 0xc5, 0x70, 0x54, 0x7e, 0x2e, 0xc1, 0xff, 0xb8, 0x35},
	{0x28, 0x9c, 0x25, 0xce, 0x76, 0xdc, 0x61, 0x04, 0xa4, 0xc9, 0x96, 0x99, 0x05, 0x58, 0x21, 0x8f, 0x50, 0x01, 0xe6, 0x16, 0x21, 0x1f, 0x0e, 0xaf, 0xda, 0x97, 0xe0, 0x13, 0x34, 0xd5, 0xf4, 0x95},
	{0x07, 0x79, 0x41, 0xa9, 0xa3, 0xf4, 0xbb, 0x11, 0x70, 0xed, 0x2e, 0x71, 0x6d, 0x32, 0x39, 0xbc, 0xab, 0xf1, 0x84, 0x2f, 0x90, 0xea, 0xd2, 0x30, 0xa7, 0x92, 0x06, 0x29, 0x7f, 0xb9, 0x50, 0x97},
	{0x21, 0x55, 0xd1, 0xbb, 0x63, 0x1b, 0xf1, 0x91, 0xb6, 0x2b, 0x98, 0x5b, 0xa6, 0x5e, 0x72, 0xa9, 0x2d, 0xa3, 0x68, 0xaf, 0x1a, 0x73, 0x4c, 0x82, 0x37, 0x98, 0x88, 0x2d, 0x87, 0xe1, 0x20, 0xd8},
	{0x74, 0x95, 0x19, 0x29, 0xa7, 0x73, 0xc0, 0xe2, 0xad, 0xe0, 0x79, 0xca, 0xee, 0x0b, 0x33, 0xf4, 0xe3, 0x03, 0xc7, 0xb7, 0x90, 0x5c, 0x83, 0x7d, 0xdc, 0xa3, 0x6f, 0x57, 0xf3, 0xbd, 0x85, 0xd4},
	{0xa0, 0xca, 0xfa, 0xc8, 0xc0, 0x2b, 0xf9, 0x12, 0x0e, 0x97, 0xf9, 0x60, 0xb5, 0x5b, 0xa0, 0x9b, 0x27, 0x1c, 0x2f, 0x6e, 0x05, 0x26, 0xcb, 0xcb, 0x01, 0x67, 0x49, 0xc6, 0x3f, 0xa3, 0x91, 0x31},
	{0x64, 0x07, 0xf2, 0x65, 0xe6, 0x97, 0x43, 0xf7, 0x92, 0xaa, 0xef, 0x81, 0xf0, 0xd7, 0xfa, 0x90, 0x11, 0x9e, 0x2f, 0x9b, 0xb7, 0xf6, 0x1c, 0x05, 0xca, 0x08, 0xd8, 0xfd, 0x45, 0x0d, 0x90, 0x77},
	{0xba, 0xa6, 0xa6, 0x91, 0xe6, 0xec, 0x85, 0x2c, 0x60, 0x7a, 0xce, 0x8b, 0x60, 0x1e, 0x41, 0x60, 0xfb, 0xca, 0x2e, 0xb1, 0x69, 0x55, 0x90, 0x21, 0xe8, 0x1c, 0x87, 0x46, 0x40, 0x18, 0xbd, 0x7a},
	{0x7d, 0xfd, 0x90, 0xd7, 0x3a, 0x6d, 0x9e, 0x06, 0x8c, 0xed, 0x1c, 0xa8, 0x3f, 0x94, 0xd0, 0x7d, 0x46, 0x2b, 0x3c, 0xb7, 0x19, 0x6f, 0xef, 0xe3, 0x67, 0xa4, 0x45, 0x1e, 0x2c, 0xf0, 0xee, 0xec},
	{0x4f, 0xe7, 0xd7, 0x20, 0x6b, 0x14, 0x2b, 0x1a, 0xe6, 0x53, 0xb7, 0x46, 0x54, 0xfa, 0x84, 0xf4, 0x1e, 0x44, 0x4a, 0xff, 0xfd, 0xe8, 0xc8, 0xfb, 0x2b, 0xa1, 0x2c, 0x86, 0xbb, 0x85, 0x91, 0xcc},
	{0x15, 0xe5, 0xce, 0x54, 0x3e, 0xc2, 0x3c, 0x66, 0x4b, 0x04, 0xdc, 0x38, 0xb0, 0xd1, 0xc0, 0x70, 0x08, 0x5e, 0xf8, 0x0f, 0x4a, 0xb6, 0xb1, 0x72, 0xc3, 0xce, 0x71, 0x69, 0x9f, 0x3f, 0x39, 0xa5},
	{0x70, 0x6c, 0xb4, 0xe6, 0xca, 0xf6, 0xfc, 0x6f, 0x75, 0xaf, 0xd2, 0x0a, 0xc3, 0xe7, 0x8f, 0xe5, 0x0a, 0xca, 0xe6, 0xf4, 0x87, 0x66, 0xfa, 0x76, 0xf2, 0x37, 0x2b, 0x7d, 0xe7, 0xa7, 0x87, 0x47},
	{0xcd, 0x9a, 0x41, 0x73, 0x96, 0x8a, 0xbd, 0xb0, 0x9f, 0x30, 0xfa, 0x87, 0xe4, 0x4d, 0x4e, 0xad, 0xd0, 0xb2, 0x47, 0xbd, 0x08, 0x82, 0x81, 0x3e, 0x13, 0x98, 0xcc, 0x70, 0x22, 0x0f, 0x2a, 0x70},
	{0xc3, 0x85, 0x10, 0x83, 0xd9, 0xcf, 0x0f, 0x11, 0xa8, 0x48, 0xb6, 0x7c, 0x9c, 0x04, 0x26, 0x4b, 0xd0, 0x37, 0x28, 0x93, 0x50, 0x86, 0xe2, 0x39, 0x4b, 0xe9, 0x5c, 0x18, 0xf7, 0xcd, 0x95, 0x1b},
	{0x80, 0x5b, 0x02, 0x0f, 0x0e, 0xdb, 0x3e, 0xe7, 0x98, 0x6b, 0x05, 0xfb, 0x49, 0xaa, 0x2a, 0xff, 0x05, 0x1c, 0xb5, 0x57, 0xf0, 0x91, 0x98, 0x49, 0xfb, 0xd7, 0x93, 0x23, 0xca, 0xb7, 0x4f, 0x05},
	{0x5f, 0x09, 0x05, 0xd5, 0x81, 0x67, 0x2e, 0xa7, 0xbb, 0xb5, 0x1b, 0x75, 0x22, 0x43, 0x76, 0xb8, 0x5c, 0x90, 0x2a, 0x1d, 0xfb, 0xb4, 0xfc, 0x73, 0xde, 0xa0, 0x17, 0x3b, 0xdb, 0x6b, 0x81, 0x7f},
	{0x22, 0x91, 0x61, 0xa3, 0xf0, 0x63, 0xe0, 0x34, 0x5b, 0x1b, 0xa3, 0x0d, 0x18, 0xdc, 0x51, 0xd8, 0x3d, 0x19, 0x50, 0x1b, 0x19, 0xb9, 0x63, 0x64, 0xa2, 0xc9, 0x39, 0x26, 0xa9, 0xca, 0xab, 0xe0},
	{0x9b, 0xb2, 0x98, 0xf8, 0xea, 0x42, 0x74, 0xa5, 0x04, 0xe8, 0x0a, 0xb2, 0x3b, 0xc5, 0x0a, 0x5b, 0x22, 0xee, 0x30, 0xe5, 0xdc, 0x18, 0x79, 0x0e, 0x8e, 0x4b, 0x5c, 0x8c, 0x35, 0x6a, 0xe3, 0xc9},
	{0x4a, 0xb8, 0xc5, 0xcc, 0x68, 0x2a, 0x9f, 0xa0, 0xa8, 0xcb, 0x17, 0xf5, 0x9d, 0xb4, 0x23, 0x6c, 0x04, 0xf7, 0x64, 0xdd, 0xfc, 0xd3, 0x2c, 0x28, 0xa1, 0x30, 0x5b, 0xb1, 0x6d, 0x10, 0xe0, 0xe7},
	{0xe2, 0x50, 0x9a, 0xfd, 0xac, 0x89, 0xaa, 0x19, 0x1f, 0x24, 0x38, 0xe4, 0x39, 0x4e, 0x9f, 0xb6, 0x80, 0xeb, 0xf4, 0x9b, 0x05, 0x91, 0x15, 0xc4, 0x5a, 0x64, 0xee, 0xa4, 0x98, 0x1c, 0x13, 0x59},
	{0x12, 0x19, 0xa4, 0x95, 0x8e, 0x87, 0xc6, 0x97, 0x3c, 0xb4, 0x4c, 0x50, 0xe6, 0x8b, 0x15, 0xf6, 0x6e, 0x61, 0xd2, 0x78, 0xa8, 0x85, 0x05, 0x91, 0xf4, 0xf7, 0x25, 0x62, 0xd1, 0x91, 0x25, 0x44},
	{0xf8, 0x74, 0xf5, 0x2e, 0x9f, 0xe9, 0x9f, 0xfd, 0x53, 0x62, 0x3a, 0xc2, 0x02, 0x6e, 0x9d, 0xb2, 0xa2, 0xa5, 0xfe, 0x1a, 0xe0, 0x91, 0xb2, 0x98, 0x72, 0x5c, 0x4c, 0xed, 0x9e, 0xad, 0x0e, 0xc2},
	{0xe7, 0x5b, 0x0b, 0x29, 0x62, 0x90, 0xf2, 0x49, 0xaf, 0xcf, 0x34, 0x6c, 0xdd, 0x9b, 0xb3, 0x4a, 0x62, 0x9a, 0x4d, 0x2f, 0x91, 0x73, 0xc4, 0x1f, 0x8d, 0xcf, 0x1a, 0x9d, 0x80, 0x63, 0x45, 0x91},
	{0x4b, 0xb0, 0x6c, 0x6b, 0x17, 0x94, 0x33, 0x36, 0x86, 0xc2, 0x11, 0xea, 0xde, 0xe2, 0xb8, 0x34, 0x19, 0x8c, 0x27, 0x5d, 0xd2, 0x0a, 0x68, 0x26, 0x09, 0x2b, 0x55, 0x0a, 0x68, 0x2b, 0xde, 0xed},
	{0x5c, 0x5e, 0x2e, 0xe7, 0x0a, 0x24, 0xe3, 0x9a, 0x31, 0x50, 0xd1, 0x02, 0x89, 0x19, 0x6c, 0x14, 0x83, 0xc1, 0xe3, 0x95, 0xc0, 0x37, 0x16, 0x4b, 0x67, 0x7a, 0x68, 0xe7, 0xce, 0x46, 0x44, 0x07},
	{0x79, 0xd6, 0x75, 0x8f, 0xce, 0x59, 0xb3, 0x20, 0x15, 0x0e, 0xb2, 0x33, 0xf8, 0x87, 0xe4, 0xf3, 0x02, 0xbf, 0xeb, 0xa9, 0x8a, 0xac, 0x31, 0x93, 0xd3, 0x4b, 0x31, 0x22, 0xdd, 0x7c, 0x6c, 0x9f},
	{0xb9, 0x27, 0xb7, 0x4a, 0xe3, 0x9e, 0xc9, 0xec, 0xec, 0x06, 0x09, 0xb5, 0x68, 0xdb, 0x43, 0x40, 0x8c, 0x94, 0x56, 0x6f, 0x6a, 0xc9, 0xbb, 0xc4, 0xa8, 0x2d, 0x47, 0xb5, 0xa3, 0x0f, 0x95, 0x6f},
	{0x0f, 0x6f, 0xc0, 0x86, 0x3e, 0xcc, 0x2e, 0x39, 0xc6, 0xdc, 0xf4, 0xfb, 0xdd, 0xb6, 0xdc, 0x85, 0x04, 0xe8, 0xb4, 0x24, 0x9a, 0x75, 0x61, 0x74, 0x6d, 0x20, 0x98, 0x35, 0x79, 0x2a, 0x2f, 0xff},
	{0x57, 0x01, 0x0b, 0xaa, 0x11, 0xfa, 0xee, 0x37, 0x3b, 0x92, 0xb9, 0x91, 0xbe, 0x3e, 0x0c, 0x15, 0x46, 0x54, 0x7b, 0xa7, 0xfb, 0x0a, 0x7d, 0x7b, 0x42, 0xf6, 0xc4, 0x8b, 0x6d, 0xdc, 0xb9, 0x16},
	{0x47, 0x4a, 0x11, 0x06, 0x0f, 0x92, 0x6b, 0xea, 0x89, 0x9d, 0xdd, 0xf6, 0xf1, 0x92, 0x48, 0x73, 0x16, 0x81, 0x90, 0x03, 0x9e, 0xde, 0xc8, 0x98, 0x12, 0x44, 0x5a, 0xbc, 0x8e, 0xc0, 0x18, 0x92},
	{0x7e, 0x9c, 0xbc, 0x3c, 0x42, 0xde, 0x62, 0xd8, 0x11, 0xff, 0x98, 0xd8, 0xf8, 0xc8, 0x0e, 0x4a, 0x41, 0x8b, 0x2e, 0x13, 0x9a, 0x39, 0x15, 0x73, 0x08, 0x76, 0x9e, 0xd9, 0xea, 0xb1, 0x6f, 0xa0},
	{0x2f, 0x8e, 0x93, 0x43, 0x2c, 0xe3, 0x15, 0xa8, 0x97, 0xd8, 0x59, 0x3e, 0xfa, 0xa5, 0x4a, 0xb9, 0x93, 0x16, 0x05, 0x8a, 0x37, 0xf2, 0x18, 0x39, 0x64, 0xa7, 0x53, 0x3a, 0xaf, 0x73, 0x3f, 0x21},
	{0x49, 0x90, 0x39, 0x9b, 0x3c, 0xb6, 0xbc, 0xf1, 0xfe, 0xa3, 0x44, 0xc5, 0xab, 0xb8, 0x11, 0x12, 0xf2, 0x0b, 0xc5, 0xf2, 0xa2, 0x99, 0xb7, 0x81, 0x40, 0xf2, 0x34, 0xa4, 0xe7, 0x05, 0xa0, 0xd2},
	{0xca, 0xf2, 0x60, 0x72, 0x86, 0xfe, 0x9a, 0x80, 0x75, 0xf2, 0x11, 0xf6, 0xdf, 0x12, 0x70, 0xae, 0x03, 0xeb, 0x03, 0x57, 0x88, 0x6c, 0xb3, 0x4d, 0xec, 0x62, 0x98, 0xa6, 0x97, 0x82, 0x0d, 0x34},
	{0x3b, 0xe4, 0x94, 0x28, 0xd2, 0xb8, 0x63, 0x0d, 0x5c, 0xfc, 0xfa, 0x19, 0xbf, 0xb7, 0x6f, 0xd2, 0x87, 0x2f, 0xee, 0x1f, 0x22, 0x3f, 0x3b, 0x96, 0xdb, 0xbe, 0x1d, 0x84, 0xdd, 0x04, 0x87, 0xdb},
	{0x41, 0x03, 0x69, 0x21, 0x4e, 0xe5, 0x30, 0x07, 0x05, 0x11, 0x75, 0x73, 0x10, 0x14, 0x65, 0x6c, 0xf9, 0xda, 0x59, 0xa2, 0x44, 0x58, 0x1f, 0x53, 0x4e, 0x8d, 0x09, 0x51, 0xf9, 0x73, 0x72, 0x63},
	{0xdb, 0x9d, 0xc7, 0x71, 0xa0, 0xfd, 0x04, 0x01, 0xfd, 0x59, 0xa8, 0xcc, 0xd1, 0xd6, 0xd5, 0x8d, 0xb1, 0x4c, 0xb2, 0x5d, 0xda, 0xab, 0x97, 0xa9, 0xd8, 0xe9, 0x25, 0x0d, 0x2b, 0x1a, 0x1b, 0x58},
	{0x01, 0xaf, 0xdd, 0xf3, 0xdf, 0x96, 0x83, 0x14, 0xc3, 0x5f, 0x78, 0x89, 0x51, 0x61, 0x13, 0x34, 0x81, 0x8a, 0x7b, 0x4f, 0xb9, 0x4e, 0x84, 0x24, 0x10, 0xc0, 0x63, 0xd8, 0x19, 0xa5, 0x2d, 0xb7},
	{0x7b, 0x63, 0x04, 0x14, 0x9b, 0xe0, 0xfd, 0x60, 0x02, 0xa5, 0xff, 0xd8, 0x54, 0x22, 0x0b, 0x53, 0x3a, 0xcb, 0xce, 0xd6, 0x85, 0xe0, 0x16, 0x7a, 0xd3, 0x0c, 0x82, 0xce, 0xca, 0xaa, 0xe1, 0xb3},
	{0x37, 0x1f, 0x22, 0x21, 0x2f, 0xd0, 0x4f, 0xaa, 0xcd, 0x40, 0x3c, 0x66, 0x43, 0x2f, 0x0a, 0x51, 0x2a, 0x3f, 0xb7, 0xba, 0x67, 0x8c, 0x6e, 0x34, 0x93, 0x21, 0x45, 0xf6, 0x45, 0x5f, 0xd6, 0xb4},
	{0x4e, 0xd9, 0x75, 0xa6, 0x33, 0x37, 0xe8, 0xdb, 0x88, 0xb0, 0x3b, 0x47, 0x07, 0x36, 0xfa, 0xcf, 0x3e, 0x13, 0x69, 0x89, 0x14, 0x02, 0x04, 0xc9, 0x45, 0x4d, 0x23, 0x7b, 0x47, 0x62, 0x09, 0x58},
	{0x01, 0x3a, 0x99, 0x41, 0x08, 0x05, 0x49, 0xf8, 0x19, 0x2a, 0x91, 0x1a, 0xda, 0xb7, 0xf3, 0x1b, 0xc3, 0x05, 0x24, 0x94, 0x6d, 0x80, 0x2d, 0xb7, 0x70, 0x5d, 0xc7, 0xde, 0x6f, 0xc9, 0x55, 0xa5},
	{0x70, 0x78, 0x6b, 0xb1, 0xdf, 0xc0, 0x3b, 0x1a, 0xeb, 0xfd, 0xfc, 0x47, 0xe1, 0x8d, 0xe9, 0xd6, 0x61, 0x01, 0xbd, 0x28, 0x1c, 0x41, 0xcc, 0xea, 0x37, 0x84, 0xb8, 0xcb, 0x50, 0x57, 0x71, 0x2b},
	{0xf7, 0xc0, 0x73, 0xd0, 0xcf, 0x97, 0x68, 0xf0, 0xf4, 0x85, 0x81, 0x80, 0x7d, 0xb7, 0x9c, 0x88, 0xc6, 0xce, 0xbe, 0x07, 0x45, 0x3a, 0xde, 0x9e, 0xa0, 0x17, 0x8a, 0x02, 0xfb, 0xa5, 0xe8, 0xfc},
	{0x62, 0x75, 0x65, 0x54, 0x3d, 0x2c, 0xe6, 0x06, 0xc6, 0xbb, 0x3b, 0x3f, 0x79, 0x98, 0xb2, 0xd0, 0x2a, 0xe5, 0x4f, 0x3e, 0xbc, 0xe9, 0xe2, 0x9d, 0x2e, 0xf9, 0xb3, 0x0a, 0xf9, 0xca, 0x24, 0xc1},
	{0xd2, 0x4d, 0xcb, 0xf4, 0x62, 0x15, 0x64, 0x47, 0x60, 0x41, 0x36, 0xb6, 0x9c, 0xe6, 0xfa, 0xe0, 0x61, 0x61, 0x1f, 0x0d, 0xd1, 0x13, 0x6c, 0x16, 0x0e, 0x51, 0xff, 0xf1, 0xc4, 0x90, 0x30, 0xab},
	{0x82, 0xa2, 0x4a, 0xbc, 0x38, 0x0c, 0x18, 0xac, 0x57, 0xfa, 0x4e, 0x39, 0xa4, 0xd7, 0x5f, 0xfc, 0xb6, 0xdb, 0x8d, 0x87, 0xbb, 0x25, 0x53, 0xbc, 0xbb, 0xa2, 0x22, 0x67, 0x0b, 0x85, 0x7c, 0xe5},
	{0xc4, 0x9b, 0xf5, 0x04, 0x7b, 0xe3, 0xee, 0xc4, 0xc0, 0xc9, 0x9b, 0x2f, 0xd6, 0x73, 0xdd, 0xc7, 0xa5, 0xf0, 0xc4, 0x90, 0xec, 0xfe, 0x88, 0xd5, 0xc1, 0x09, 0xf7, 0x3f, 0x8c, 0x69, 0x9a, 0x2e},
	{0xa8, 0xfd, 0xce, 0x99, 0xf4, 0x5a, 0xbe, 0xbc, 0x76, 0x83, 0xc5, 0x97, 0xcc, 0x8a, 0xbe, 0x2e, 0x74, 0x9f, 0x79, 0xd6, 0x51, 0x8e, 0x0c, 0x31, 0x08, 0xba, 0xc7, 0xe5, 0xf7, 0xd8, 0xe0, 0x27},
	{0x23, 0x12, 0xd5, 0x5c, 0x12, 0x20, 0xa3, 0xb4, 0x82, 0x74, 0xb4, 0xf2, 0x67, 0x82, 0x5d, 0xf1, 0xa7, 0x0a, 0x68, 0xb5, 0x36, 0x87, 0x76, 0x27, 0x59, 0x07, 0xa9, 0x0b, 0x63, 0x68, 0x2f, 0x2d},
	{0x9d, 0x96, 0x86, 0xf4, 0xd6, 0x14, 0x2e, 0x86, 0x32, 0xda, 0xa3, 0x63, 0xad, 0x3d, 0xf0, 0x2b, 0x23, 0xee, 0x91, 0xe9, 0x10, 0x68, 0xa5, 0x96, 0x7c, 0xe0, 0x89, 0x28, 0x60, 0xa3, 0xf3, 0x82},
	{0x53, 0x5e, 0xef, 0x3c, 0xe1, 0xca, 0xd3, 0x77, 0xab, 0xd4, 0x3b, 0x42, 0x68, 0xb4, 0xb4, 0x9a, 0xd8, 0x9f, 0xa1, 0x51, 0x81, 0xea, 0xdc, 0x49, 0x7e, 0x87, 0x16, 0x49, 0x20, 0xc7, 0xec, 0x40},
	{0xb4, 0x33, 0x58, 0x89, 0x65, 0xf2, 0x16, 0x5c, 0x08, 0xd1, 0x63, 0x8c, 0x56, 0xe8, 0xe0, 0x09, 0xb9, 0x5c, 0x38, 0xb0, 0xb2, 0xe8, 0x0b, 0x9d, 0xb4, 0x38, 0x37, 0x07, 0x2c, 0x7a, 0x60, 0xc0},
	{0xc1, 0x14, 0x39, 0xf2, 0x62, 0x50, 0x8b, 0x9a, 0xdd, 0x86, 0x15, 0xa7, 0xb0, 0xcb, 0x14, 0x3a, 0x6c, 0x28, 0xa8, 0x0b, 0x88, 0x09, 0xd6, 0xc8, 0x87, 0x7e, 0xf5, 0x04, 0xa8, 0xc2, 0x8e, 0x14},
	{0x61, 0xdf, 0x71, 0x42, 0xf0, 0xdb, 0xa3, 0xd5, 0xf7, 0x69, 0x5b, 0xc8, 0xe4, 0x98, 0x9c, 0x66, 0x8c, 0x02, 0xf0, 0x32, 0x81, 0x85, 0xa0, 0x5d, 0xae, 0xf6, 0x59, 0x6f, 0xc3, 0x16, 0x1a, 0x4e},
	{0x46, 0x08, 0x8f, 0x48, 0x49, 0x45, 0x34, 0xb7, 0xa9, 0xf3, 0x07, 0x35, 0x35, 0x78, 0x2b, 0x02, 0x69, 0x70, 0xf1, 0x75, 0xef, 0x30, 0x68, 0xf6, 0x8d, 0xb0, 0xd0, 0xdc, 0x7e, 0xe0, 0xe5, 0x9d},
	{0x9f, 0x1b, 0x1c, 0xc6, 0x83, 0x23, 0xb7, 0x31, 0xa8, 0xa8, 0x66, 0x92, 0x4d, 0x12, 0x9d, 0x82, 0xc8, 0x56, 0x85, 0x97, 0x05, 0x84, 0x4c, 0xf3, 0xc2, 0x04, 0x37, 0xb6, 0x9f, 0xbf, 0x15, 0x0d},
	{0xc7, 0x1a, 0x8c, 0x0e, 0xee, 0x02, 0x43, 0x5b, 0x06, 0xcd, 0xaa, 0x64, 0xc7, 0x57, 0x4a, 0x3b, 0xcf, 0xc3, 0x10, 0x82, 0xcd, 0xe1, 0x58, 0x02, 0x58, 0x58, 0xd2, 0x30, 0x61, 0x72, 0xf9, 0xae},
	{0xdd, 0x3e, 0x43, 0x2c, 0x4c, 0xe9, 0xfa, 0x12, 0x17, 0xb1, 0xb2, 0xd5, 0xaf, 0x86, 0x32, 0xde, 0xce, 0xe0, 0x19, 0x20, 0x98, 0x7d, 0xcc, 0x63, 0x38, 0xaf, 0xeb, 0xe2, 0x32, 0x81, 0xa8, 0x1c},
	{0xf9, 0xcf, 0x92, 0xfd, 0x88, 0x1d, 0x8f, 0xd1, 0x14, 0xeb, 0x1e, 0x1d, 0x1a, 0x97, 0x55, 0x74, 0x86, 0x3e, 0x48, 0x2c, 0x5c, 0x35, 0x65, 0xe2, 0x39, 0x88, 0x9e, 0xde, 0x0a, 0xc0, 0x29, 0xe3},
	{0xae, 0xe5, 0x07, 0x46, 0xce, 0x1d, 0x59, 0xbd, 0xd5, 0xbc, 0x21, 0xd4, 0x97, 0xc1, 0xfe, 0xda, 0xef, 0x26, 0x05, 0x6e, 0x8f, 0x61, 0x25, 0x51, 0x8e, 0x12, 0x5d, 0xb8, 0x6e, 0x5d, 0xfb, 0x5b},
	{0x34, 0x56, 0x64, 0x7e, 0x92, 0xdf, 0x30, 0x3e, 0x4b, 0x6c, 0x46, 0xdb, 0xf5, 0x21, 0xbb, 0x9a, 0xb7, 0xa7, 0x03, 0x6b, 0xee, 0x27, 0x9e, 0xcf, 0x6e, 0x54, 0xd8, 0x33, 0x0f, 0x74, 0x78, 0x47},
	{0xcd, 0xde, 0x7b, 0xa3, 0x0e, 0xd2, 0x94, 0x7c, 0xce, 0x0e, 0x39, 0x13, 0x35, 0x7b, 0x88, 0x99, 0xaf, 0x0f, 0x2a, 0x58, 0x97, 0xeb, 0xc0, 0x5a, 0xaa, 0x04, 0xaf, 0x83, 0x6c, 0xe7, 0xf9, 0x8f},
	{0x94, 0x8b, 0x30, 0xd3, 0x9e, 0x93, 0x75, 0x21, 0x66, 0x4d, 0xed, 0xda, 0x4d, 0x36, 0xaa, 0x44, 0x27, 0x18, 0x06, 0xed, 0x6a, 0x89, 0x83, 0x62, 0x19, 0xcb, 0x24, 0x68, 0x5c, 0x26, 0xee, 0xf1},
	{0xa5, 0x93, 0xb9, 0x05, 0x16, 0xfc, 0x82, 0xf7, 0x20, 0x4c, 0xf1, 0x51, 0x76, 0xb2, 0x6b, 0x40, 0xab, 0x0f, 0xdf, 0x81, 0x0c, 0x22, 0x8d, 0x8e, 0x79, 0xda, 0xb9, 0xa3, 0x44, 0x80, 0xe1, 0x7c},
	{0x17, 0xe7, 0x3a, 0x52, 0x5a, 0xd3, 0x28, 0xef, 0x3f, 0x9b, 0x81, 0x3c, 0x80, 0x8e, 0x1f, 0x40, 0xa4, 0x9d, 0xdd, 0x7d, 0xe1, 0x72, 0x25, 0x4c, 0xd9, 0xac, 0x03, 0x1b, 0x92, 0xc1, 0x52, 0x90},
	{0x58, 0xcf, 0x64, 0x61, 0xb1, 0xb1, 0x41, 0xc1, 0xc7, 0x5b, 0x0c, 0x16, 0x11, 0xbd, 0x33, 0x10, 0xc7, 0x90, 0x2e, 0xbc, 0x57, 0x6e, 0xd2, 0xf0, 0xd3, 0xca, 0xfd, 0x62, 0x8f, 0xbe, 0x72, 0x01},
	{0x13, 0xd7, 0x7b, 0x5f, 0xbc, 0xac, 0x80, 0x6c, 0x26, 0xce, 0x12, 0x45, 0x89, 0x13, 0x23, 0xbb, 0xc4, 0x1d, 0x9e, 0x5f, 0x6b, 0x43, 0xd5, 0xe5, 0x79, 0x66, 0x01, 0x8c, 0x03, 0x08, 0xb0, 0x89},
	{0xfe, 0x50, 0xa6, 0x49, 0x96, 0x6f, 0xad, 0xdb, 0x1e, 0x93, 0x86, 0x5a, 0x7e, 0x86, 0xa1, 0xf8, 0xc7, 0x95, 0x30, 0x62, 0xa5, 0x0d, 0x96, 0xc5, 0xb7, 0x81, 0xc6, 0xfd, 0x08, 0x7c, 0x25, 0x98},
	{0xc0, 0x2a, 0x1a, 0x38, 0x0c, 0x95, 0x68, 0x31, 0x98, 0x32, 0x76, 0x63, 0xfb, 0x53, 0xbf, 0x9a, 0x91, 0x6d, 0x56, 0xfe, 0xbe, 0x8a, 0x1c, 0xe6, 0x66, 0x65, 0xc6, 0x08, 0x46, 0x68, 0xbf, 0xfd},
	{0x71, 0xcd, 0x3b, 0x06, 0x08, 0xf2, 0xd5, 0x2b, 0xe0, 0xde, 0xc5, 0x81, 0x05, 0x1c, 0xc8, 0x7b, 0xec, 0x68, 0xe2, 0xa7, 0x92, 0x06, 0xe9, 0x68, 0xdf, 0x8a, 0x0a, 0x37, 0x92, 0xf0, 0xe7, 0x6d},
	{0x29, 0xa4, 0x5f, 0x7c, 0xd5, 0x1d, 0x20, 0x7f, 0xd2, 0xc2, 0xbe, 0xa5, 0xca, 0xdf, 0x3a, 0x03, 0x8a, 0x21, 0x54, 0x72, 0xe1, 0xa5, 0xc5, 0x48, 0xce, 0x20, 0xb4, 0x9a, 0x39, 0x08, 0xcc, 0x66},
	{0x84, 0x7c, 0x3e, 0x90, 0x73, 0x0f, 0x09, 0x88, 0xd9, 0xa3, 0x0b, 0x77, 0xde, 0x06, 0xc2, 0x40, 0x7d, 0xaa, 0x7f, 0xf8, 0xa6, 0x4a, 0x07, 0x98, 0x54, 0x32, 0x48, 0x18, 0x18, 0x7b, 0x56, 0xd6},
	{0x86, 0x39, 0x66, 0x99, 0xde, 0xc5, 0xe7, 0x81, 0xb7, 0xf1, 0x28, 0x80, 0x2b, 0x6f, 0x8c, 0x67, 0x26, 0x2b, 0x9a, 0x34, 0xf9, 0x38, 0xb6, 0x21, 0xeb, 0x98, 0x53, 0x03, 0xb2, 0x5b, 0x4b, 0x09},
	{0x8b, 0x05, 0x44, 0x98, 0xe2, 0x2b, 0x61, 0xbf, 0x0d, 0xf6, 0xca, 0x13, 0x93, 0x39, 0x75, 0x30, 0x5d, 0x62, 0x55, 0x44, 0x15, 0x4d, 0x32, 0x24, 0x94, 0x9f, 0x45, 0x8d, 0x4d, 0x79, 0x25, 0x3b},
	{0xda, 0x23, 0x81, 0x68, 0xb7, 0x67, 0xb4, 0x40, 0x87, 0xf3, 0x6e, 0x52, 0x2c, 0xe5, 0x3d, 0x7c, 0xe1, 0xd3, 0x3d, 0xac, 0xd8, 0x6e, 0xad, 0x37, 0x16, 0x2b, 0xbd, 0xbc, 0xe3, 0x20, 0x26, 0xa3},
	{0x1a, 0xa6, 0xed, 0x33, 0x02, 0x31, 0xff, 0x09, 0x3b, 0x55, 0x8e, 0x13, 0xcc, 0x77, 0xd8, 0x0f, 0xc4, 0xc5, 0x4f, 0x0a, 0xec, 0x8c, 0x9f, 0xd8, 0xa6, 0x7b, 0x4e, 0x8a, 0x69, 0xee, 0xbc, 0x78},
	{0x5b, 0x5e, 0xe5, 0xea, 0x3f, 0xb3, 0x21, 0x26, 0x7a, 0xa4, 0xa1, 0x7a, 0x84, 0x3c, 0x98, 0xe9, 0x9c, 0xbd, 0x2f, 0x34, 0x11, 0xc2, 0x5d, 0x82, 0x91, 0x9d, 0xa9, 0x35, 0x22, 0xca, 0x04, 0x06},
	{0x6a, 0x5e, 0xc1, 0x7f, 0x1e, 0x71, 0x15, 0xcf, 0x4e, 0x4c, 0x0f, 0x0a, 0x1f, 0x88, 0x5f, 0x8f, 0x2b, 0x7a, 0x99, 0x14, 0xfc, 0x69, 0x7f, 0xef, 0x93, 0x08, 0x1d, 0x92, 0x6e, 0x17, 0xee, 0x24},
	{0x16, 0x5c, 0xb7, 0x1e, 0x8e, 0xed, 0xdb, 0x68, 0xc5, 0x57, 0xa0, 0xe3, 0x46, 0x57, 0xe0, 0x95, 0x67, 0x26, 0x9f, 0xc6, 0x90, 0x16, 0x41, 0x0d, 0x01, 0x5e, 0x5b, 0x42, 0xb7, 0x65, 0xf2, 0x33},
	{0x42, 0xb2, 0x11, 0x5e, 0x97, 0xe3, 0xe7, 0x8f, 0x3b, 0x73, 0xbd, 0x4a, 0x50, 0x20, 0xd7, 0xdd, 0xaa, 0x77, 0x09, 0xc9, 0xac, 0x4b, 0x47, 0xe1, 0x03, 0x7f, 0x6a, 0x0d, 0x03, 0x96, 0x4a, 0xff},
	{0x57, 0x4c, 0xd6, 0x7b, 0xc9, 0x53, 0xc1, 0xfe, 0x8d, 0x6f, 0x16, 0xd8, 0x0f, 0xb3, 0x9a, 0x1e, 0x1e, 0xfa, 0xe4, 0x1a, 0x16, 0x3c, 0x43, 0x5d, 0xd7, 0x98, 0x9b, 0x79, 0x55, 0xa6, 0x05, 0x73},
	{0xf6, 0x93, 0x07, 0x59, 0xab, 0xb7, 0x85, 0x1a, 0xd2, 0x41, 0x32, 0x4b, 0x7f, 0xe9, 0x67, 0x1a, 0x02, 0x8a, 0x72, 0xa3, 0x93, 0xa4, 0x8c, 0xa2, 0xae, 0xef, 0x1c, 0xdc, 0x5d, 0x2e, 0x2e, 0x24},
	{0x16, 0xc0, 0x7a, 0xd8, 0xa8, 0x58, 0x1d, 0xf8, 0x10, 0xcb, 0xad, 0xde, 0x07, 0x37, 0x81, 0xad, 0xf2, 0x0f, 0x6f, 0x2d, 0x27, 0x79, 0x8c, 0xfe, 0x4c, 0x63, 0xbc, 0x43, 0xf9, 0x56, 0xcb, 0xf3},
	{0x83, 0x12, 0x87, 0x39, 0xba, 0xf0, 0x2b, 0xc5, 0x2a, 0x28, 0xe5, 0x83, 0x51, 0xfc, 0x4b, 0x66, 0xf7, 0x73, 0xd4, 0x0a, 0x7f, 0x47, 0x16, 0xef, 0xea, 0xf8, 0x9a, 0xd9, 0xad, 0x36, 0x8d, 0xb2},
	{0x24, 0x68, 0xe7, 0x99, 0xdf, 0xec, 0x6e, 0x51, 0x8f, 0x61, 0xf8, 0x35, 0x87, 0x28, 0x4a, 0x99, 0xcb, 0x28, 0x01, 0xd1, 0x6c, 0x62, 0x72, 0x03, 0x8f, 0xad, 0x7a, 0x9f, 0x33, 0xbf, 0x44, 0x23},
	{0x6f, 0x98, 0xaa, 0x99, 0x41, 0x7f, 0xd1, 0xd0, 0xd4, 0xa9, 0x6f, 0xf6, 0x83, 0xc1, 0xbd, 0x1f, 0x67, 0xfa, 0xe7, 0x14, 0x4a, 0xea, 0x4c, 0x85, 0x75, 0x6e, 0xb5, 0x6f, 0x80, 0x8a, 0x70, 0x42},
	{0x92, 0x0c, 0xeb, 0xba, 0x67, 0x68, 0xc1, 0x04, 0x7c, 0xbc, 0x8c, 0x4a, 0xc1, 0x07, 0xb4, 0x0d, 0x89, 0x4a, 0x41, 0x14, 0x44, 0x0b, 0x60, 0x63, 0x77, 0x44, 0x55, 0x46, 0xc8, 0xc9, 0x31, 0xb7},
	{0x7b, 0xf0, 0xa7, 0x22, 0xd2, 0x58, 0x03, 0x22, 0x12, 0x1a, 0x1c, 0x2c, 0x97, 0xb2, 0x6d, 0xf4, 0x03, 0xc3, 0x0e, 0xec, 0xde, 0x1d, 0x53, 0x9e, 0x94, 0x6b, 0x06, 0xf8, 0x54, 0x7b, 0x8d, 0xaf},
	{0xce, 0x0d, 0x1d, 0x3c, 0xbd, 0xc8, 0x91, 0x7f, 0x89, 0xac, 0x2c, 0x2a, 0x78, 0xd4, 0x49, 0x71, 0xd5, 0xf6, 0x17, 0x4f, 0x21, 0x7a, 0x8b, 0x5f, 0x2d, 0xd6, 0x13, 0x47, 0x9b, 0x33, 0xaf, 0x93},
	{0x6d, 0x9a, 0x4f, 0x0b, 0xa5, 0x71, 0x09, 0x0f, 0x63, 0xf6, 0xe0, 0x60, 0xbb, 0x43, 0xd6, 0xc3, 0x97, 0x92, 0x57, 0xe5, 0x01, 0x92, 0x0a, 0x07, 0x46, 0xfc, 0xc7, 0xe1, 0x70, 0x23, 0x92, 0xec},
	{0x4f, 0xf7, 0xb0, 0xff, 0xb7, 0x8b, 0x37, 0x8d, 0xef, 0xbc, 0xac, 0xba, 0x9c, 0x7e, 0x53, 0xf2, 0xa0, 0x95, 0xf3, 0x94, 0xaf, 0xf0, 0x35, 0x1e, 0xcf, 0x80, 0x74, 0x04, 0x44, 0xd9, 0x42, 0xb0},
	{0x02, 0xa7, 0x77, 0xd8, 0xbe, 0xdb, 0x77, 0x17, 0x14, 0xb6, 0xfe, 0xee, 0x9d, 0xe1, 0xe9, 0x8c, 0xea, 0xd6, 0xfb, 0x14, 0x41, 0x9a, 0xae, 0x4e, 0x71, 0xff, 0x89, 0x93, 0x2c, 0x45, 0xb7, 0x07},
	{0x79, 0x88, 0x8c, 0xd6, 0xf1, 0xed, 0x4c, 0xb4, 0x98, 0x2b, 0x54, 0x1c, 0x14, 0x93, 0x1c, 0x76, 0x9a, 0xd6, 0xfc, 0xb1, 0x0b, 0x2d, 0x9c, 0x2b, 0xd6, 0x5d, 0xb4, 0xc3, 0xa9, 0x9e, 0x6f, 0x6c},
	{0x3a, 0x23, 0xae, 0xf0, 0xd8, 0xf9, 0x0e, 0xcb, 0xaa, 0xb3, 0x02, 0x7d, 0xc8, 0xcc, 0x2b, 0x5f, 0x53, 0x8d, 0xe4, 0x1d, 0x20, 0x28, 0x55, 0x0a, 0x04, 0x9c, 0xa8, 0x55, 0xac, 0xb4, 0xac, 0x15},
	{0x72, 0xab, 0xf2, 0xee, 0x2f, 0x7c, 0x3b, 0x7d, 0x41, 0x17, 0x27, 0x96, 0xa1, 0xe2, 0x05, 0xd1, 0x3d, 0xe7, 0x5b, 0x0f, 0x40, 0x39, 0x3a, 0xe9, 0xe5, 0xc0, 0x70, 0x43, 0xf3, 0x95, 0x62, 0x97},
	{0x21, 0x20, 0x03, 0x08, 0x24, 0x97, 0x79, 0x11, 0xda, 0x1a, 0x62, 0x52, 0x41, 0x92, 0xa2, 0x95, 0x40, 0x35, 0x7e, 0x70, 0x3a, 0xa3, 0x9f, 0x6a, 0xee, 0xda, 0xda, 0x5b, 0xed, 0x6d, 0x0c, 0xea},
	{0x25, 0xbe, 0x95, 0x29, 0x40, 0x44, 0x77, 0x13, 0x99, 0x33, 0xeb, 0x93, 0xcb, 0x88, 0xe1, 0x91, 0x34, 0xa4, 0x70, 0x86, 0xf2, 0xb3, 0xb9, 0x39, 0xb3, 0xb1, 0xd2, 0x22, 0xa5, 0x71, 0x28, 0x0e},
	{0xf2, 0x2c, 0xe8, 0xca, 0x7b, 0xe6, 0x77, 0xec, 0x10, 0xe7, 0xea, 0x32, 0x7a, 0xd7, 0x6f, 0xc2, 0xbd, 0x4c, 0xf0, 0xe4, 0xb8, 0x2a, 0xbf, 0xae, 0x14, 0xeb, 0x27, 0x46, 0x56, 0xdc, 0x25, 0x83},
	{0x40, 0xbe, 0xe1, 0x69, 0x02, 0x7a, 0x10, 0x03, 0x26, 0xff, 0x4f, 0x42, 0xa6, 0x61, 0xc0, 0x8d, 0xe5, 0xdb, 0x0d, 0x41, 0x5b, 0x56, 0x25, 0x64, 0xcf, 0x5a, 0xd6, 0x96, 0x2f, 0x76, 0x9d, 0x6d},
	{0x29, 0x95, 0x2c, 0xa6, 0xba, 0x17, 0xa8, 0xba, 0xfa, 0x04, 0x9f, 0x2f, 0x09, 0x7c, 0x47, 0x0b, 0x7c, 0x28, 0xe7, 0x9d, 0x07, 0x6c, 0x95, 0x84, 0xc2, 0x30, 0x64, 0x46, 0x98, 0xb5, 0x4a, 0x1c},
	{0xf9, 0x3b, 0x39, 0x92, 0x02, 0xeb, 0x71, 0x83, 0xbc, 0x06, 0xab, 0x30, 0xe0, 0x31, 0xaf, 0x01, 0x53, 0x8c, 0x80, 0xd2, 0xe1, 0xaa, 0x74, 0xbb, 0xde, 0x72, 0x01, 0x51, 0xae, 0x6a, 0x1d, 0x01},
	{0x13, 0x76, 0x8f, 0x02, 0x4f, 0x1f, 0xda, 0x5c, 0x64, 0xb5, 0x4f, 0xe2, 0xaf, 0xe2, 0xaf, 0x27, 0xd5, 0x89, 0x82, 0xf1, 0x05, 0xf5, 0x11, 0x43, 0x32, 0x6b, 0xb9, 0x70, 0x30, 0x29, 0x64, 0xe6},
	{0xf1, 0x86, 0xe0, 0x8c, 0xbf, 0xb3, 0xae, 0x71, 0x04, 0xe1, 0x0f, 0xf5, 0xb1, 0x7e, 0x57, 0xb2, 0x1f, 0xe0, 0x84, 0x0c, 0xfe, 0x7c, 0x88, 0xce, 0xb8, 0x42, 0x7e, 0x37, 0x38, 0xc6, 0x24, 0x26},
	{0x30, 0xc4, 0x1a, 0x49, 0xda, 0x76, 0x7b, 0x89, 0xa8, 0x0f, 0x9f, 0x71, 0x9a, 0xfd, 0x37, 0x90, 0xef, 0xbb, 0x19, 0x39, 0x3b, 0x3c, 0x3f, 0x94, 0x2f, 0x02, 0x9a, 0xc3, 0xd0, 0x20, 0x3f, 0x12},
	{0x0b, 0x2b, 0x3e, 0xfb, 0xbf, 0x2d, 0x23, 0xcb, 0x8c, 0x2a, 0x79, 0xe9, 0x57, 0xbe, 0xc9, 0x52, 0xe4, 0x67, 0x47, 0xb8, 0x7b, 0x4e, 0x28, 0x06, 0xe3, 0xc7, 0xa5, 0x3b, 0x5f, 0x5b, 0xdc, 0xdf},
	{0x0d, 0x35, 0x4c, 0x67, 0xce, 0xfc, 0x61, 0xf3, 0x78, 0xe5, 0x9a, 0xc9, 0xa6, 0xf4, 0x2e, 0xd0, 0x0e, 0xf6, 0x29, 0xd2, 0x98, 0x51, 0xb8, 0x9c, 0xc0, 0x5b, 0x7b, 0x30, 0xdf, 0xd7, 0x15, 0xf3},
	{0x83, 0x09, 0x72, 0x0f, 0x05, 0x96, 0x8f, 0xb9, 0x21, 0x40, 0xcb, 0xb4, 0x46, 0x5d, 0x88, 0xc9, 0x8a, 0x8f, 0x2d, 0x4c, 0x80, 0xf8, 0x3e, 0xdb, 0x88, 0x74, 0xa2, 0x1e, 0xde, 0x10, 0x0c, 0x6c},
	{0x3a, 0xd9, 0x2f, 0x0e, 0x01, 0x0d, 0x75, 0x08, 0xa7, 0x0a, 0x69, 0xe2, 0x60, 0x9e, 0xe5, 0xcb, 0xec, 0x9d, 0xbd, 0xcc, 0xdd, 0xa3, 0x80, 0xa8, 0xf4, 0xc2, 0x81, 0x43, 0x71, 0xc3, 0x22, 0x76},
	{0xa9, 0x77, 0xcc, 0x77, 0x50, 0x16, 0x2e, 0x37, 0x78, 0x46, 0x27, 0x44, 0x9c, 0x8c, 0x96, 0xf7, 0x74, 0xed, 0x23, 0x52, 0xe9, 0x2b, 0x7e, 0x8a, 0xcc, 0x97, 0x86, 0x6e, 0x9f, 0xab, 0x7d, 0x33},
	{0x42, 0x0d, 0x3a, 0x25, 0xfe, 0x3d, 0x1c, 0x7a, 0x64, 0xce, 0xac, 0xcd, 0xf7, 0xfa, 0x0c, 0xab, 0xc8, 0x64, 0xc2, 0x75, 0x38, 0x32, 0x7a, 0xde, 0x84, 0xb2, 0xa3, 0xd0, 0x2f, 0xbe, 0x84, 0x70},
	{0xc3, 0x0a, 0x87, 0xf8, 0x8f, 0xa7, 0xb8, 0xb0, 0x62, 0xb3, 0x48, 0x2a, 0xd6, 0x17, 0x91, 0x09, 0xd6, 0x2f, 0xfe, 0x16, 0x98, 0xb6, 0x52, 0xc2, 0xab, 0x7e, 0x76, 0x77, 0x57, 0xc0, 0x24, 0xb5},
	{0x5d, 0xa2, 0xd4, 0x38, 0x37, 0x8a, 0xae, 0x01, 0x75, 0x16, 0x81, 0x7a, 0xd4, 0xa1, 0x5c, 0xdc, 0xb2, 0x35, 0x77, 0xb1, 0x6f, 0xe9, 0x85, 0xc2, 0x3a, 0xc0, 0xb7, 0x39, 0xa7, 0xf7, 0x98, 0x51},
	{0x8a, 0xaa, 0x9f, 0x1e, 0xed, 0xf4, 0x50, 0xe6, 0x4f, 0x96, 0x0c, 0x9b, 0xf4, 0x76, 0x7e, 0x01, 0xea, 0xcd, 0x7c, 0x54, 0x74, 0x4f, 0xcc, 0xa4, 0xce, 0x56, 0x97, 0x94, 0x63, 0xe2, 0xbe, 0x44},
	{0xf8, 0xec, 0x46, 0x15, 0x14, 0x8a, 0xec, 0x6b, 0x22, 0x11, 0x18, 0x82, 0xc9, 0x7c, 0x60, 0xd9, 0x55, 0x21, 0x52, 0xb4, 0xcc, 0x4d, 0x78, 0x51, 0x47, 0x66, 0xed, 0x5f, 0x68, 0x1f, 0x7d, 0x59},
	{0x12, 0x03, 0x18, 0x49, 0x66, 0x3f, 0xc5, 0xd1, 0x4e, 0x89, 0x79, 0x70, 0x80, 0x7b, 0x27, 0x09, 0x01, 0xb4, 0x18, 0xde, 0x87, 0x4c, 0xd9, 0xfc, 0x61, 0xea, 0x27, 0x61, 0x2a, 0x61, 0x26, 0x2a},
	{0xe4, 0x2d, 0xbc, 0x98, 0xea, 0x33, 0xa6, 0x23, 0xd8, 0x29, 0xbc, 0x4c, 0xd5, 0xd4, 0xf4, 0xce, 0xcd, 0x74, 0x05, 0xd3, 0x64, 0xb5, 0x68, 0xbc, 0x3f, 0xf4, 0x2f, 0xec, 0x30, 0x58, 0xd0, 0x50},
	{0x99, 0x9c, 0xa4, 0x4d, 0x90, 0x34, 0xd8, 0xc3, 0x8a, 0x32, 0x7a, 0xef, 0x5d, 0x75, 0x95, 0x21, 0x2c, 0x68, 0x33, 0x57, 0xc1, 0x50, 0x2b, 0x7e, 0x39, 0xe6, 0x68, 0x7d, 0xd7, 0xf2, 0x1f, 0xf7},
	{0xcf, 0x9b, 0x31, 0x0b, 0x7c, 0xbc, 0x83, 0xb4, 0xaa, 0x96, 0x25, 0x6d, 0x26, 0xae, 0x4b, 0x68, 0x0c, 0xe2, 0x8b, 0x8f, 0x7e, 0xf1, 0xe9, 0x94, 0x74, 0x63, 0x14, 0xd4, 0x0a, 0x3e, 0x11, 0xad},
	{0xe8, 0xba, 0x03, 0xdc, 0x33, 0x5c, 0x17, 0xa5, 0xcc, 0x06, 0x32, 0x81, 0x1a, 0x61, 0x74, 0x5a, 0xfc, 0x50, 0x2a, 0x28, 0xf1, 0xf2, 0x0c, 0x8b, 0x28, 0x41, 0x90, 0xb7, 0x75, 0x7e, 0xf6, 0xe4},
	{0xd7, 0x7e, 0x59, 0x76, 0xc6, 0xf5, 0x8f, 0xe6, 0x2e, 0x5b, 0x2e, 0x1a, 0xf1, 0xcf, 0xf5, 0x64, 0xd7, 0x60, 0x41, 0x46, 0x94, 0xa0, 0xe4, 0xbd, 0x7f, 0x2f, 0xdf, 0xfc, 0x3d, 0x90, 0x6f, 0x5f},
	{0x78, 0x29, 0x15, 0xcc, 0xf1, 0xa3, 0x1c, 0x5c, 0xab, 0xb3, 0x98, 0xed, 0x7d, 0x4f, 0xf7, 0x8b, 0x7e, 0xd0, 0x7d, 0xf6, 0xbd, 0x6c, 0x89, 0xd2, 0x9c, 0x4b, 0xee, 0x68, 0xd2, 0x01, 0x8d, 0x18},
	{0xb5, 0x6c, 0x6f, 0x47, 0x3b, 0xd4, 0x01, 0x83, 0xe1, 0x73, 0x25, 0x0e, 0x64, 0x4d, 0xde, 0xab, 0xa4, 0xc1, 0x40, 0x91, 0xf1, 0x40, 0xa2, 0x7b, 0x96, 0xc2, 0x71, 0x02, 0x19, 0x06, 0x91, 0x0d},
	{0xc7, 0x30, 0xfb, 0x7d, 0x6f, 0xba, 0xb4, 0xed, 0xb4, 0x84, 0x71, 0x27, 0x5b, 0x7e, 0x15, 0x78, 0xe6, 0xaf, 0x87, 0x47, 0xcb, 0x15, 0x9c, 0xec, 0xd0, 0x0c, 0x14, 0x76, 0xd5, 0xf4, 0x40, 0x2a},
	{0xe4, 0xf8, 0x8f, 0x7b, 0xde, 0x3a, 0x23, 0x52, 0xe4, 0xd3, 0xb1, 0x44, 0x82, 0x0f, 0xf1, 0xfc, 0xbc, 0x93, 0x1e, 0x4c, 0xfd, 0xf9, 0x31, 0xf9, 0x2f, 0x45, 0xc9, 0xdf, 0x27, 0xa7, 0x45, 0x36},
	{0x1d, 0xc9, 0xeb, 0xb1, 0x7c, 0xda, 0xc5, 0xee, 0x5d, 0x7f, 0x49, 0x2b, 0x2e, 0xee, 0x53, 0x5e, 0x60, 0x39, 0x8a, 0xe0, 0x8a, 0x62, 0xc5, 0x7a, 0x60, 0x0a, 0xb1, 0x37, 0x66, 0xa7, 0xbe, 0x78},
	{0x5b, 0x59, 0x8a, 0xec, 0xbd, 0xcd, 0xca, 0x1c, 0x9d, 0xc2, 0x8b, 0xbd, 0xbc, 0xde, 0x01, 0x62, 0xcd, 0x19, 0xd3, 0xf1, 0xfb, 0xa4, 0xb3, 0xd8, 0x33, 0x5b, 0xd8, 0xca, 0x9f, 0xc5, 0x4d, 0x04},
	{0x4c, 0x5d, 0xb3, 0x66, 0xbf, 0xc9, 0x09, 0x7e, 0xa7, 0xb9, 0xfb, 0xb2, 0xfb, 0xb4, 0x9c, 0x1b, 0x15, 0x82, 0x21, 0x0a, 0x8a, 0xab, 0x72, 0x6f, 0xc6, 0xdd, 0x50, 0x01, 0x53, 0xb9, 0xfd, 0x86},
	{0x1f, 0x89, 0xce, 0xe5, 0x20, 0xd7, 0xca, 0xe4, 0xe8, 0x65, 0x61, 0x23, 0xff, 0xea, 0x7f, 0xec, 0x9f, 0xe6, 0xf5, 0x38, 0x19, 0x20, 0xc9, 0x42, 0x99, 0xd3, 0x20, 0x49, 0x90, 0xd2, 0xce, 0x85},
	{0x2a, 0x56, 0xdb, 0xd5, 0xd9, 0x6f, 0x87, 0x50, 0x46, 0x31, 0x66, 0x62, 0xd2, 0xe8, 0x9e, 0x8a, 0x09, 0x1f, 0x83, 0x7f, 0x4f, 0x8f, 0x92, 0xa0, 0x32, 0x4e, 0x6e, 0xaa, 0x7b, 0x85, 0xb7, 0xa6},
	{0x45, 0xdf, 0xc6, 0xbe, 0x31, 0x36, 0x02, 0xa3, 0x77, 0xb9, 0x3c, 0x6b, 0x25, 0x83, 0x09, 0x3e, 0x91, 0xb8, 0xb5, 0x1c, 0x93, 0x5f, 0x13, 0x0c, 0xa6, 0x04, 0xeb, 0xf1, 0x87, 0xd7, 0x2f, 0xd9},
	{0x67, 0x7e, 0x27, 0x05, 0x7f, 0x3c, 0xdc, 0x3c, 0x78, 0x28, 0xa2, 0x27, 0x41, 0x8a, 0x70, 0x07, 0xa0, 0x65, 0xd2, 0x1b, 0xf4, 0xc1, 0x14, 0x15, 0xdb, 0x87, 0x38, 0x45, 0x4e, 0x3a, 0xbd, 0x20},
	{0x5a, 0x57, 0x7d, 0x14, 0xa7, 0xf8, 0x52, 0x15, 0x8d, 0x45, 0xfd, 0x77, 0x2d, 0x01, 0xa0, 0xa0, 0x98, 0xe2, 0xb8, 0x54, 0xe4, 0x4e, 0x3f, 0xba, 0xe5, 0xf8, 0xdf, 0xbe, 0xf9, 0x63, 0xe7, 0xab},
	{0x82, 0x2a, 0x50, 0x0a, 0xd8, 0xc9, 0xf5, 0x9a, 0x05, 0x17, 0x4a, 0xf2, 0x65, 0x66, 0xb8, 0xa6, 0xf6, 0x22, 0x0e, 0x20, 0xe2, 0x10, 0x0e, 0xef, 0x17, 0x49, 0x8b, 0x47, 0x44, 0xb8, 0x8f, 0x32},
	{0x51, 0xa9, 0xd3, 0x82, 0x5e, 0xa8, 0xf2, 0x8c, 0x2e, 0xba, 0xb4, 0xe9, 0xde, 0x01, 0x78, 0x0d, 0x4d, 0x3c, 0x03, 0x29, 0x9d, 0x2d, 0xfa, 0x99, 0x68, 0xdc, 0xb6, 0xac, 0x67, 0xe2, 0x99, 0x79},
	{0x48, 0x9a, 0x5e, 0xef, 0x53, 0xf2, 0x89, 0x06, 0x18, 0xb8, 0x07, 0x09, 0xe1, 0x2c, 0x70, 0xc1, 0x4a, 0xee, 0xd8, 0x09, 0xe5, 0xa7, 0x47, 0xd0, 0x59, 0xe6, 0xc5, 0xbc, 0x65, 0x43, 0x06, 0xd8},
	{0x74, 0xfc, 0xd6, 0xa6, 0xf3, 0x43, 0x29, 0x9a, 0x3a, 0x4e, 0xea, 0x55, 0xbc, 0x4c, 0x41, 0xf6, 0x8b, 0x64, 0x8a, 0x07, 0x36, 0xa3, 0x57, 0x76, 0x8e, 0xcd, 0x11, 0x1a, 0x62, 0x5f, 0x27, 0xf2},
	{0x90, 0xff, 0x0f, 0xae, 0x19, 0xb6, 0x01, 0xdc, 0xaf, 0x0b, 0x29, 0x8d, 0x45, 0x45, 0xae, 0x2e, 0x78, 0xd0, 0xb1, 0x9e, 0x82, 0x42, 0x77, 0x03, 0xeb, 0x8f, 0xff, 0x05, 0x95, 0x2a, 0x8a, 0xa5},
	{0x70, 0xe9, 0xae, 0x27, 0x30, 0xd1, 0x88, 0x52, 0xcf, 0x4b, 0xdd, 0xff, 0x76, 0x12, 0x1b, 0x8b, 0x54, 0xba, 0x68, 0xbd, 0x16, 0xae, 0x0e, 0xb0, 0x83, 0x1f, 0x6a, 0xf3, 0x8b, 0xad, 0x92, 0xf4},
	{0xfa, 0xfe, 0x85, 0x4c, 0x6c, 0x3b, 0x35, 0x93, 0x0f, 0xc8, 0x87, 0x11, 0x8a, 0x83, 0x93, 0x63, 0xc7, 0xe9, 0x4b, 0x47, 0xf0, 0x1a, 0xc7, 0xe8, 0x3c, 0x1b, 0xad, 0x45, 0x27, 0xf6, 0x5c, 0x30},
	{0x77, 0xd2, 0x72, 0x21, 0xbf, 0x26, 0x62, 0x16, 0xf4, 0xa2, 0xf9, 0xb6, 0x1e, 0xea, 0xbc, 0x2b, 0x3d, 0xa4, 0xd4, 0x8e, 0x49, 0x17, 0x9b, 0x3e, 0x60, 0x80, 0x6f, 0x68, 0xa7, 0x92, 0xcb, 0x41},
	{0xa7, 0x98, 0x60, 0x2f, 0xa5, 0xb1, 0xcb, 0xc0, 0x8e, 0x87, 0x5c, 0x07, 0x3d, 0x9c, 0x20, 0x89, 0xdc, 0x63, 0x0d, 0xb4, 0xba, 0x34, 0x4d, 0xed, 0x4a, 0x93, 0xfb, 0x0f, 0x6c, 0x7a, 0x3b, 0x1c},
	{0xf9, 0xb5, 0x34, 0xde, 0x8b, 0xf4, 0xd7, 0xe0, 0xc6, 0x72, 0x28, 0xf3, 0xc8, 0x05, 0x4f, 0x66, 0xd1, 0x2c, 0xcb, 0x38, 0xc8, 0x17, 0x2c, 0x63, 0xb7, 0xfa, 0xa2, 0xce, 0xe7, 0x9e, 0xd2, 0x70},
	{0xc3, 0xb1, 0x3f, 0xf6, 0x74, 0xd2, 0x71, 0x7b, 0xf8, 0x11, 0xf4, 0xae, 0xe8, 0x28, 0x6e, 0x4a, 0x1b, 0x36, 0xb6, 0x1f, 0xd5, 0x46, 0x77, 0x94, 0x16, 0x4d, 0x3e, 0x76, 0x49, 0x08, 0x04, 0xe3},
	{0xae, 0xdf, 0x79, 0xeb, 0xc5, 0xe1, 0x96, 0x43, 0x7f, 0x50, 0xdb, 0x3e, 0x24, 0x33, 0x41, 0xe1, 0xd1, 0xbb, 0x0d, 0x90, 0xbc, 0xe8, 0x56, 0x43, 0xf8, 0x3d, 0x98, 0x18, 0xc6, 0x1e, 0x33, 0x76},
	{0xa9, 0xe3, 0xca, 0x21, 0xb5, 0xd2, 0xc2, 0xd4, 0x33, 0x9e, 0x7d, 0xf6, 0x40, 0xc8, 0x3b, 0x53, 0x5e, 0xd0, 0x05, 0xe2, 0xb5, 0x4a, 0x35, 0x5c, 0x27, 0x9b, 0x79, 0x77, 0xc4, 0x1c, 0xa0, 0x22},
	{0x7c, 0x9a, 0x95, 0x8f, 0x24, 0x08, 0xde, 0x51, 0xb6, 0x1c, 0xd9, 0x3a, 0xdf, 0x04, 0xc3, 0xe6, 0x79, 0xb5, 0x11, 0x61, 0xae, 0x27, 0xdf, 0xf5, 0xa3, 0x73, 0x48, 0x1d, 0x09, 0xfa, 0xdd, 0x5d},
	{0x5e, 0x81, 0x84, 0x76, 0xaf, 0x7b, 0x83, 0x57, 0xcf, 0x39, 0x4d, 0x88, 0x7e, 0x65, 0x1d, 0xb0, 0x49, 0xd7, 0xb4, 0x44, 0x29, 0x7e, 0x65, 0x87, 0xdb, 0xe0, 0x39, 0x1d, 0xf1, 0x26, 0xfb, 0x41},
	{0xa7, 0xb1, 0x33, 0xd9, 0xf2, 0xa1, 0x96, 0x21, 0xcf, 0xbc, 0xc7, 0xb3, 0x03, 0xfc, 0xaf, 0x28, 0x47, 0x17, 0x7e, 0xd4, 0x70, 0x54, 0x24, 0x13, 0xf3, 0x28, 0x9b, 0x59, 0x19, 0x2c, 0x8f, 0x2c},
	{0x8e, 0x9d, 0x91, 0x29, 0x8e, 0xe9, 0x9e, 0x9e, 0x40, 0x9e, 0x22, 0x59, 0x73, 0x5b, 0x10, 0x51, 0x2e, 0xd4, 0x82, 0x8e, 0xa6, 0x3a, 0xcd, 0xf3, 0xc1, 0xff, 0x6d, 0x6b, 0x53, 0x5e, 0xb9, 0xd9},
	{0x67, 0xb5, 0x65, 0x52, 0xe8, 0x83, 0x03, 0xa0, 0x45, 0x1f, 0x85, 0x39, 0x73, 0xdc, 0xa8, 0x1e, 0xcf, 0xda, 0xbe, 0x2c, 0x66, 0xf4, 0x71, 0xcb, 0x24, 0xe0, 0xc3, 0xc3, 0xd4, 0xee, 0x34, 0xb6},
	{0x68, 0x8a, 0xaa, 0x97, 0xe7, 0xca, 0xd9, 0xcd, 0x51, 0x2a, 0xf6, 0x6c, 0x7b, 0x02, 0x28, 0x60, 0xc4, 0x5f, 0x90, 0x62, 0x31, 0x2b, 0x17, 0xb8, 0xb5, 0x8d, 0x69, 0x1f, 0xb0, 0xe0, 0xa4, 0x51},
	{0x8a, 0x9f, 0xb7, 0x60, 0x42, 0x24, 0x10, 0x91, 0x83, 0xb2, 0x30, 0xec, 0xe2, 0xd9, 0xdd, 0x75, 0x56, 0xbb, 0x16, 0xb3, 0xa7, 0x11, 0x0e, 0x36, 0xb4, 0xd9, 0xda, 0x4a, 0x45, 0xf5, 0xa9, 0x78},
	{0x5b, 0xce, 0xdc, 0xb0, 0x6c, 0xf3, 0x34, 0xc9, 0xe2, 0x1c, 0x46, 0xc4, 0x7b, 0x12, 0x36, 0xec, 0xe6, 0x2f, 0x51, 0x6d, 0xa8, 0x89, 0xc0, 0x13, 0x7f, 0x8f, 0x0b, 0xa1, 0xe2, 0xe6, 0x1f, 0x13},
	{0x18, 0xcf, 0x80, 0x06, 0x9b, 0x86, 0x97, 0xa9, 0x2b, 0x69, 0x23, 0x79, 0x7d, 0x5d, 0xb8, 0xdb, 0x4c, 0xb4, 0xdd, 0x81, 0xf8, 0xc9, 0x26, 0xce, 0xed, 0x22, 0xe3, 0xdb, 0x5c, 0xee, 0x14, 0x04},
	{0x4c, 0x1e, 0x25, 0x6c, 0x55, 0xef, 0x42, 0x23, 0x12, 0x0f, 0x50, 0x1a, 0x3f, 0x75, 0x1f, 0xa2, 0xac, 0x03, 0x8c, 0x04, 0xfa, 0xa8, 0x1f, 0xfa, 0xd0, 0x03, 0x29, 0x3a, 0x42, 0x7a, 0xd6, 0xdf},
	{0x0d, 0x72, 0x79, 0x7c, 0x59, 0x16, 0xa3, 0x92, 0x90, 0x7b, 0xbf, 0xe0, 0x55, 0x9c, 0xe5, 0x06, 0xfe, 0xbe, 0x4d, 0x19, 0x24, 0xd0, 0x5e, 0xab, 0x3c, 0x68, 0xbf, 0xbc, 0xde, 0xca, 0x34, 0xf9},
	{0x3d, 0x06, 0x89, 0x89, 0x1f, 0xd3, 0x92, 0x54, 0xf8, 0xf2, 0xb5, 0x71, 0xc0, 0xba, 0x45, 0x3b, 0x07, 0x48, 0x09, 0x65, 0x0e, 0xcc, 0x65, 0xf6, 0x8c, 0x3e, 0x0c, 0x97, 0xbf, 0x4e, 0x7d, 0x2d},
	{0x9d, 0x88, 0x92, 0xa8, 0x03, 0x19, 0xdd, 0xb7, 0xd2, 0xa0, 0x25, 0x62, 0x2e, 0x9a, 0xc8, 0x33, 0xe9, 0x4e, 0xd3, 0x88, 0xc0, 0x50, 0xee, 0x85, 0xad, 0x35, 0xb0, 0x8d, 0xfc, 0x7f, 0xd5, 0xd0},
	{0xec, 0x25, 0x0d, 0xaf, 0x12, 0xfb, 0x57, 0xbb, 0xe0, 0xcc, 0x80, 0x05, 0x5b, 0x93, 0x73, 0x7a, 0x97, 0x59, 0x5a, 0xa3, 0x41, 0x26, 0x11, 0x7a, 0xe7, 0xf8, 0xd4, 0xc0, 0x7c, 0x8a, 0x6b, 0xaa},
	{0x91, 0x13, 0x96, 0x41, 0xbe, 0x61, 0xc7, 0xb2, 0x4c, 0x73, 0x8a, 0xc6, 0x88, 0x12, 0xb4, 0xfd, 0xf8, 0xf7, 0xbb, 0xb3, 0xc2, 0xa1, 0xdd, 0xf6, 0x5e, 0xfe, 0x40, 0x3d, 0x5b, 0xba, 0x68, 0x45},
	{0xeb, 0x78, 0x4b, 0x27, 0x96, 0xc4, 0x48, 0xd1, 0x91, 0x1b, 0xb4, 0x4d, 0x0b, 0x02, 0x9a, 0x9b, 0x7d, 0xe9, 0x66, 0x02, 0xfc, 0xef, 0x2d, 0x77, 0x9c, 0x43, 0x8e, 0xf9, 0xa0, 0xa0, 0x2b, 0x74},
	{0x8f, 0xa5, 0x18, 0x65, 0xde, 0xbb, 0x85, 0x50, 0x72, 0x62, 0xa4, 0x0b, 0x10, 0xe3, 0x2b, 0x85, 0x91, 0xd5, 0x4b, 0x6b, 0x94, 0x22, 0x59, 0x49, 0x1c, 0x88, 0x8c, 0x83, 0xe7, 0x69, 0x02, 0xd1},
	{0xff, 0xb8, 0x94, 0x1e, 0x02, 0x3b, 0xc4, 0xce, 0xe0, 0x65, 0x0b, 0xcd, 0xad, 0xaf, 0x94, 0x11, 0xf5, 0xfb, 0xcf, 0x4a, 0x75, 0x66, 0xd8, 0xfa, 0xa2, 0xfc, 0xa2, 0x8d, 0x13, 0x16, 0x73, 0x86},
	{0x1f, 0x3a, 0x2b, 0xc2, 0x58, 0x6a, 0x38, 0x29, 0x58, 0x22, 0xbd, 0xd3, 0x80, 0xbc, 0x64, 0xe4, 0x95, 0x06, 0x8c, 0xd6, 0x59, 0xdf, 0x04, 0xe8, 0x0c, 0xb7, 0x01, 0xbb, 0x1c, 0x92, 0x61, 0x0b},
	{0xad, 0x9f, 0x32, 0xa3, 0x1e, 0x97, 0xac, 0x3a, 0x76, 0x0b, 0x8b, 0x14, 0xe3, 0x96, 0x87, 0xd5, 0x6b, 0x78, 0x64, 0xb0, 0x44, 0xc5, 0xbe, 0xf8, 0x52, 0x0f, 0xe1, 0x3d, 0x37, 0xc4, 0xf0, 0xfa},
	{0x08, 0x2a, 0xa5, 0x8f, 0xba, 0xb3, 0x40, 0x2c, 0x64, 0x0f, 0x1e, 0x9e, 0x88, 0x0a, 0xf0, 0xdc, 0xb5, 0xae, 0xdd, 0xdf, 0xc3, 0x90, 0xa0, 0x4f, 0x59, 0x92, 0x2b, 0x5a, 0x9d, 0x33, 0x61, 0xf9},
	{0x3d, 0x03, 0xd1, 0x55, 0xec, 0x30, 0x37, 0xb7, 0x46, 0x06, 0xc1, 0xd0, 0xbe, 0x67, 0xd3, 0x2e, 0xdd, 0x03, 0x19, 0xf5, 0xc8, 0x2b, 0x25, 0x08, 0x68, 0x5b, 0xf6, 0x03, 0x59, 0x0d, 0x84, 0x78},
	{0x5b, 0x79, 0x40, 0xd6, 0x59, 0x5d, 0x20, 0xee, 0xc4, 0xd9, 0xf2, 0x35, 0x47, 0x4e, 0x88, 0xe2, 0xbd, 0xa4, 0xe9, 0x62, 0xee, 0xe6, 0xfa, 0x38, 0x41, 0x53, 0x89, 0x8d, 0xab, 0xfa, 0xe7, 0x3e},
	{0x85, 0x7a, 0xa3, 0xbb, 0x77, 0xb5, 0x37, 0x98, 0x8a, 0x17, 0x31, 0x1a, 0xd3, 0x3b, 0x96, 0x13, 0x90, 0xa6, 0xcd, 0xb8, 0x52, 0xd1, 0x6b, 0x14, 0x9d, 0xa5, 0xb1, 0xd8, 0x1b, 0x67, 0x93, 0x51},
	{0x8a, 0x72, 0x47, 0x69, 0x6e, 0xb4, 0x6f, 0x7f, 0xd6, 0x69, 0x0d, 0x2b, 0x94, 0x71, 0xe4, 0xcb, 0x25, 0xef, 0xef, 0xee, 0x7d, 0x72, 0xf4, 0x4a, 0x18, 0xf1, 0xf2, 0x92, 0x82, 0x5e, 0x2e, 0x4f},
	{0x55, 0x6c, 0x96, 0x45, 0xbf, 0xc6, 0x6a, 0x56, 0xe4, 0xdb, 0x4e, 0x2a, 0x49, 0x0a, 0x5c, 0xf2, 0x10, 0x03, 0x12, 0x1b, 0xe4, 0xd8, 0x24, 0x95, 0x13, 0xb3, 0x1c, 0x06, 0xe2, 0x26, 0xa3, 0x52},
	{0xbf, 0x2e, 0x90, 0x11, 0xea, 0x5b, 0x4f, 0x55, 0x2c, 0x1c, 0x1a, 0x8f, 0x18, 0xed, 0x6a, 0x84, 0xa5, 0x1c, 0x58, 0xa2, 0xba, 0xf8, 0x2d, 0x5c, 0x1f, 0xbd, 0xa4, 0xac, 0xff, 0x33, 0x7d, 0x6f},
	{0x0f, 0x69, 0xc9, 0xa1, 0x65, 0xc5, 0xeb, 0xbf, 0x7f, 0x1c, 0xee, 0xe8, 0xe7, 0xc6, 0xea, 0xac, 0xc0, 0xc1, 0x3c, 0x2a, 0x57, 0xa5, 0x50, 0xe2, 0xf5, 0x97, 0x08, 0xd6, 0x60, 0x76, 0x13, 0x17},
	{0x54, 0x9d, 0xcd, 0xff, 0xd9, 0xfb, 0x65, 0xc2, 0xe6, 0xd0, 0x1a, 0xe8, 0x17, 0xc9, 0x2e, 0x1d, 0x7b, 0xdd, 0x0b, 0x35, 0xc4, 0x66, 0xdc, 0x82, 0x02, 0x46, 0xf0, 0x01, 0xb2, 0x4a, 0xbc, 0xc3},
	{0xf4, 0x78, 0x56, 0x2a, 0x6e, 0xcb, 0xd1, 0x9e, 0x77, 0x73, 0xcf, 0x05, 0x68, 0x8c, 0x8a, 0x71, 0x19, 0x99, 0x3b, 0xab, 0x69, 0x43, 0x88, 0x46, 0x1e, 0x0a, 0xcb, 0x50, 0x0d, 0xc8, 0xac, 0xd8},
	{0x74, 0x40, 0x34, 0xae, 0x36, 0x7e, 0x10, 0xc2, 0xa2, 0x21, 0x21, 0x9d, 0xb0, 0xc5, 0xe1, 0x0c, 0x3b, 0x37, 0xfd, 0xe4, 0x94, 0x2f, 0xb3, 0xb9, 0x18, 0x8a, 0xfd, 0x14, 0x8e, 0x37, 0xac, 0x58},
}
