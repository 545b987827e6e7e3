// Gem vocabulary
//
// Copyright (c) 2021  Philip Kaludercic
//
// This file is part of go-kgp.
//
// go-kgp is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-kgp is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-kgp. If not, see
// <http://www.gnu.org/licenses/>

package maze

// Gem identifies one of the 102 fixed treasure symbols a tile may
// bear. The wire name is the kebab-case string in gemNames.
type Gem uint8

const (
	GemAlexandritePearShape Gem = iota
	GemAlexandrite
	GemAlmandineGarnet
	GemAmethyst
	GemAmetrine
	GemAmmolite
	GemApatite
	GemAplite
	GemApricotSquareRadiant
	GemAquamarine
	GemAustralianMarquise
	GemAventurine
	GemAzurite
	GemBeryl
	GemBlackObsidian
	GemBlackOnyx
	GemBlackSpinelCushion
	GemBlueCeylonSapphire
	GemBlueCushion
	GemBluePearShape
	GemBlueSpinelHeart
	GemBullsEye
	GemCarnelian
	GemChromeDiopside
	GemChrysoberylCushion
	GemChrysolite
	GemCitrineCheckerboard
	GemCitrine
	GemClinohumite
	GemColorChangeOval
	GemCordierite
	GemDiamond
	GemDumortierite
	GemEmerald
	GemFancySpinelMarquise
	GemGarnet
	GemGoldenDiamondCut
	GemGoldstone
	GemGrandidierite
	GemGrayAgate
	GemGreenAventurine
	GemGreenBerylAntique
	GemGreenBeryl
	GemGreenPrincessCut
	GemGrossularGarnet
	GemHackmanite
	GemHeliotrope
	GemHematite
	GemIoliteEmeraldCut
	GemJasper
	GemJaspilite
	GemKunziteOval
	GemKunzite
	GemLabradorite
	GemLapisLazuli
	GemLemonQuartzBriolette
	GemMagnesite
	GemMexicanOpal
	GemMoonstone
	GemMorganiteOval
	GemMossAgate
	GemOrangeRadiant
	GemPadparadschaOval
	GemPadparadschaSapphire
	GemPeridot
	GemPinkEmeraldCut
	GemPinkOpal
	GemPinkRound
	GemPinkSpinelCushion
	GemPrasiolite
	GemPrehnite
	GemPurpleCabochon
	GemPurpleOval
	GemPurpleSpinelTrillion
	GemPurpleSquareCushion
	GemRawBeryl
	GemRawCitrine
	GemRedDiamond
	GemRedSpinelSquareEmeraldCut
	GemRhodonite
	GemRockQuartz
	GemRoseQuartz
	GemRubyDiamondProfile
	GemRuby
	GemSphalerite
	GemSpinel
	GemStarCabochon
	GemStilbite
	GemSunstone
	GemSuperSeven
	GemTanzaniteTrillion
	GemTigersEye
	GemTourmalineLaserCut
	GemTourmaline
	GemUnakite
	GemWhiteSquare
	GemYellowBaguette
	GemYellowBerylOval
	GemYellowHeart
	GemYellowJasper
	GemZircon
	GemZoisite
)

// gemNames maps a Gem to its kebab-case wire name, indexed by Gem value.
var gemNames = [...]string{
	"alexandrite-pear-shape",
	"alexandrite",
	"almandine-garnet",
	"amethyst",
	"ametrine",
	"ammolite",
	"apatite",
	"aplite",
	"apricot-square-radiant",
	"aquamarine",
	"australian-marquise",
	"aventurine",
	"azurite",
	"beryl",
	"black-obsidian",
	"black-onyx",
	"black-spinel-cushion",
	"blue-ceylon-sapphire",
	"blue-cushion",
	"blue-pear-shape",
	"blue-spinel-heart",
	"bulls-eye",
	"carnelian",
	"chrome-diopside",
	"chrysoberyl-cushion",
	"chrysolite",
	"citrine-checkerboard",
	"citrine",
	"clinohumite",
	"color-change-oval",
	"cordierite",
	"diamond",
	"dumortierite",
	"emerald",
	"fancy-spinel-marquise",
	"garnet",
	"golden-diamond-cut",
	"goldstone",
	"grandidierite",
	"gray-agate",
	"green-aventurine",
	"green-beryl-antique",
	"green-beryl",
	"green-princess-cut",
	"grossular-garnet",
	"hackmanite",
	"heliotrope",
	"hematite",
	"iolite-emerald-cut",
	"jasper",
	"jaspilite",
	"kunzite-oval",
	"kunzite",
	"labradorite",
	"lapis-lazuli",
	"lemon-quartz-briolette",
	"magnesite",
	"mexican-opal",
	"moonstone",
	"morganite-oval",
	"moss-agate",
	"orange-radiant",
	"padparadscha-oval",
	"padparadscha-sapphire",
	"peridot",
	"pink-emerald-cut",
	"pink-opal",
	"pink-round",
	"pink-spinel-cushion",
	"prasiolite",
	"prehnite",
	"purple-cabochon",
	"purple-oval",
	"purple-spinel-trillion",
	"purple-square-cushion",
	"raw-beryl",
	"raw-citrine",
	"red-diamond",
	"red-spinel-square-emerald-cut",
	"rhodonite",
	"rock-quartz",
	"rose-quartz",
	"ruby-diamond-profile",
	"ruby",
	"sphalerite",
	"spinel",
	"star-cabochon",
	"stilbite",
	"sunstone",
	"super-seven",
	"tanzanite-trillion",
	"tigers-eye",
	"tourmaline-laser-cut",
	"tourmaline",
	"unakite",
	"white-square",
	"yellow-baguette",
	"yellow-beryl-oval",
	"yellow-heart",
	"yellow-jasper",
	"zircon",
	"zoisite",
}

func (g Gem) String() string {
	if int(g) >= len(gemNames) {
		panic("illegal gem")
	}
	return gemNames[g]
}

// gemByName is the inverse of gemNames, built once at init.
var gemByName = func() map[string]Gem {
	m := make(map[string]Gem, len(gemNames))
	for i, n := range gemNames {
		m[n] = Gem(i)
	}
	return m
}()

// GemFromName looks up a gem by its kebab-case wire name.
func GemFromName(name string) (Gem, bool) {
	g, ok := gemByName[name]
	return g, ok
}
