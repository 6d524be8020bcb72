package colors

// Kanagawa palette shared by the wave, dragon and lotus presets
var palette = struct {
	waveBlue1    string
	fujiWhite    string
	fujiGray     string
	oniViolet    string
	crystalBlue  string
	springGreen  string
	peachRed     string
	samuraiRed   string
	waveAqua2    string
	dragonBlack4 string
	dragonWhite  string
	dragonAsh    string
	dragonViolet string
	dragonBlue2  string
	dragonGreen2 string
	dragonRed    string
	dragonAqua   string
	lotusInk1    string
	lotusGray3   string
	lotusViolet4 string
	lotusBlue4   string
	lotusGreen   string
	lotusRed     string
	lotusWhite3  string
	lotusAqua    string
}{
	waveBlue1:    "#223249",
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springGreen:  "#98BB6C",
	peachRed:     "#FF5D62",
	samuraiRed:   "#E82424",
	waveAqua2:    "#7AA89F",
	dragonBlack4: "#282727",
	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonBlue2:  "#8BA4B0",
	dragonGreen2: "#8A9A7B",
	dragonRed:    "#C4746E",
	dragonAqua:   "#8EA4A2",
	lotusInk1:    "#545464",
	lotusGray3:   "#8A8980",
	lotusViolet4: "#624C83",
	lotusBlue4:   "#4D699B",
	lotusGreen:   "#6F894E",
	lotusRed:     "#C84053",
	lotusWhite3:  "#F2ECBC",
	lotusAqua:    "#597B75",
}
