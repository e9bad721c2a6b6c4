package has

// The two messages of the HAS decoding example, and some of the parity
// pages they encode to.

// exampleMessage1 has a mask, orbits, code biases and phase biases.  It
// has fifteen pages.
var exampleMessage1 = "000cc00b20ffdfffff008100f7ffff7df55ffdfe0beee8a79a41241000a6000a" +
	"01a01280400200200113fbc041febbf00080080042ff6822fea21807c193f759" +
	"8035fd7f6a2f00080080016ff90287e7967f702580587fee217a10c9dfcc0e7f" +
	"651df577d981603ffe4147f903ff9df7805c15ff9fdcff8008004004000a0024" +
	"07ff9d7c07df7ffe2b5fdcee305519011fd7fd24479f00500e8e7edc31401c43" +
	"fdb02304007fe5030ff1ac40020020000200100100077fec06e00141feb02afc" +
	"b2c400200200043ff5f6c022097f7c0e3f4412ff4fe1ff8825fe8ffcff004808" +
	"1fe3fda097f4c04bf3812fe5ff27f0025fc6ff5ff40480edfa601c08ffe8023f" +
	"cc0f00b00b80a825fdf00fff704bf71ffffdc097fb400c00812fe781a7f8025f" +
	"e602203204801001a01607ffd006404012fec00e000825fc7fe500c04bff4056" +
	"05c08804004403012fe27feffbf0bb23dc94458ef0420afe1fa61544abda77c1" +
	"30444320a1104303d3f76f65fbbee7ccf5fe6bddf8bfcff479b7a5f1dc3bf3fc" +
	"e1243b44e90d1784ac350b2f29f2bd607b1a1e7bb207519201003807069f8feb" +
	"7cf00c0d42d85b061f33d2fa7fa00fc3506a02015c4b09409bf07cbf95040064" +
	"1582a04fc8f40e88d2dd9f73efbdc40080400407c198588ad0e9f43d67aef900" +
	"9c220420cdefbc9f90f920f0338660401a45a0b411a0841c8380c206c1882d01" +
	"21243e87d02bf27d1fa2fc6184518a50dcb00080040020010008004002001000" +
	"8004002001000800400200100080040020010008004002001000800400200100" +
	"0800400200100080040020010008004002001000800400200100080040020010" +
	"0080040020010008004002001000800400200100080040020010008004002001" +
	"0008004002001000800400200100080040020010008004002001000800400200" +
	"1000800400200100080040020010008004002001000800400200100080040020" +
	"0100080040020010008004002001000800400200100080040020010008004002" +
	"0010008004002001000800400200100080040020010008002aaaaaaaaaaaaaaa" +
	"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

// exampleMessage2 has the clock full-set and uses the mask from
// exampleMessage1.  It has two pages.
var exampleMessage2 = "0072000b58afe4002d03000acd5826ae3000aaa5532b15581aaa572aa175b880" +
	"0516e941454a28550ebd5556aa8c002001546a92c002c08020fd6ff200bbfe4f" +
	"e2fec41020210207ff7f85ff8007002bfe202d000ffbc052044febaaaaaaaaaa" +
	"aaaaaaaaaaaaaaaaaaaa"

// parityPages1 holds page payloads of exampleMessage1 by page ID.
var parityPages1 = map[uint]string{
	33:  "6d72dea0d5428fc2cbe73c3397f0c0bad543a6055b06d244f94eb787d644068b7fefc2ee24f4111ad71e4b6e21a0feb431aea823df",
	34:  "c6459cdf3acfa1100abe94ddfa9527b409470a8f5dd8bfdc82855e1010ac4e7eff966cd4f3e2dad83217437fa546c85ad5e833e997",
	50:  "e6e64274bc4644cb1945c92366d97639cd1b781db731e41a3cf04706294132b60d880e82c2a023fe624d9490a625b2772124b0a212",
	60:  "7516038c910d35ae432247bc90fb23a587a4e7f530bc7f4348ed0dd6560cd061e68be8632f1caefc66990b2feddad4283a49da8b91",
	70:  "b92610b4cca9017f75fcf9f6521e360df94239076a6544a33c50b8a284d45f3a50e6e3978ad825ac6b135684454b10cad3ab3e9dd0",
	80:  "5239410b14d7ca1b8b82de02cbc34835327b9ab1cc0e53ccb56047e05fd7cbc9bb24e2fac26ca7d28043681833d0c3804ce93a77ed",
	90:  "4d9e7dd2428a54ea16ca6eec07eee3bf251dda170daa519ab3a21c843d853bd334cd917b026c85b43419a95228d7a6f7ad6d49c2f2",
	100: "60510716bdd76e636503cb7afb231f4351874e1844026268e821130262a08fee7b4775a8db6a29eaea38c3f0898649ce856ce657fd",
	110: "d50a2426e3a0bfbdbda24bcb4242786eb27f9918f1268e31ddc8ffe0e04eb3c92afc3d6f8ba79184b2812ef0be3d6c734e1b741af5",
	120: "15d3aa288c82c925f21c2ecbd9c3db99c7e948be17e2c84fa66338a8f30c270cdad2f92c3bd3fb210d2e7ca0749bbe00377a9045e1",
	130: "003027d02ccdd7cceb2e47dfae565ad8689368e7b42f5edaac46954762c867fe4b0da7adb4d71b1fa28ac96433d48df96c440eea91",
	140: "5c8f6a218712f0ca543b1f50650b2af3556e47c211515514b3eb083ceef7c7e686b023c72f894ca1948b1afb30a4d170fc3a40d224",
	150: "2258ae3415f1e16cabac911a1c4169137799b5e5265824e4172ffb6d74830ddf4362890db3a54c373102adf6e87a51237ee3b7fa39",
	160: "69a2ae04594e0b8a2ace5f49be4641da6e32fc202f8f8bc54c7eb2251c22690f0e85d393d57ac5a90341e6c18632995a5752a19d43",
	200: "99d2432adcb15af856c8a8dccb3dfb8718a87d6a69239c69de68409efc358a4a6023247c8319648d569d8779d44a868fc4d745d55a",
}

// parityPages2 holds page payloads of exampleMessage2 by page ID.
var parityPages2 = map[uint]string{
	40:  "9b720941f4120e00a462af034c88e2e7c09ba4e9626aa929e4d71a5d9691aa234b8b87728395e464aa04648a5618810edb3e53fa84",
	77:  "144b694cd47817007368dc6655731849cd14b14db8b640e1bc871952cb0e36f11ef1660067f9a7bd1f38bd97f74f709c9d50a55622",
	255: "80db87f369aa6900f9ed2a4d9b8f77f49d800c3675e79b5fa1d11c38224f2a7f957c3825df7b7433774633af0407d5f3a147d0b601",
}
