package testutils

// FantasyNames is a small corpus of invented and mythological names
var FantasyNames = []string{
	"Aragorn", "Arwen", "Bilbo", "Mephistopheles", "Mephisto", "Haborym",
	"Halphas", "Iblis", "Heimdall", "Drekavac", "Gwyllion", "Thor", "Lir",
	"Drizzt", "Haask", "Thorin", "Andromeda", "Belial", "Asmodeus", "Lilith",
	"Baalberith", "Marchosias", "Galadriel", "Gandalf", "Elrond",
}

// JapaneseNames is a small corpus of romanized Japanese names
var JapaneseNames = []string{
	"Ieyasu", "Ujiie", "Hattori", "Hanzou", "Bungoro", "Honganji",
	"Chousokabe", "Nobunaga", "Hideyoshi", "Masamune", "Kenshin", "Yukimura",
}
