package engine

const (
	flagHardSettingsOK    = "hard_settings_ok"
	flagMQOK              = "mq_ok"
	flagHighSeedHasPicked = "high_seed_has_picked"
	flagLowSeedHasPicked  = "low_seed_has_picked"
	settingMixedDungeons  = "mixed-dungeons"
)

var francophoneS3Catalog = &Catalog{
	Settings: []Setting{
		{Name: "weirdegg", Display: "weird egg", Default: "skip", DefaultDisplay: "Skip Child Zelda", Other: []Choice{{Name: "shuffle", Display: "shuffled weird egg"}}, Description: "weirdegg: skip (défaut: Skip Child Zelda) ou shuffle"},
		{Name: "start", Display: "starting items/spawns", Default: "random", DefaultDisplay: "random start", Other: []Choice{{Name: "vanilla", Display: "vanilla start"}}, Description: "start: random (défaut) ou vanilla (vanilla spawns, pas de consommables, pas de Deku Shield)"},
		{Name: "keysy", Display: "keysy", Default: "off", DefaultDisplay: "dungeon small keys not removed", Other: []Choice{{Name: "on", Display: "small keysy"}}, Description: "keysy: off (défaut) ou on"},
		{Name: "camc", Display: "CAMC", Default: "on", DefaultDisplay: "CAMC", Other: []Choice{{Name: "off", Display: "no CAMC"}}, Description: "camc: on (défaut) ou off"},
		{Name: "deku", Display: "open Deku", Default: "closed", DefaultDisplay: "closed Deku", Other: []Choice{{Name: "open", Display: "open Deku"}}, Description: "deku: closed (défaut) ou open"},
		{Name: "card", Display: "Gerudo card", Default: "vanilla", DefaultDisplay: "vanilla Gerudo card", Other: []Choice{{Name: "shuffle", Display: "shuffled Gerudo card"}}, Description: "card: vanilla (défaut) ou shuffle"},
		{Name: "merchants", Display: "merchants", Default: "off", DefaultDisplay: "vanilla merchants", Other: []Choice{{Name: "shuffle", Display: "shuffled merchants"}}, Description: "merchants: off (défaut) ou shuffle"},
		{Name: "ocarina", Display: "ocarina", Default: "startwith", DefaultDisplay: "start with ocarina", Other: []Choice{{Name: "shuffle", Display: "shuffled ocarinas"}}, Description: "ocarina: startwith (défaut) ou shuffle"},
		{Name: "chubags", Display: "bombchu drops", Default: "off", DefaultDisplay: "no bombchu bag", Other: []Choice{{Name: "on", Display: "bombchu bag"}}, Description: "chubags: off (défaut) ou on"},
		{Name: "dungeon-er", Display: "dungeon ER", Default: "off", DefaultDisplay: "no dungeon ER", Other: []Choice{{Name: "on", Display: "dungeon ER"}}, Description: "dungeon-er: off (défaut) ou on"},
		{Name: "songs", Display: "songs", Default: "songs", DefaultDisplay: "songs on songs", Other: []Choice{{Name: "anywhere", Display: "songsanity anywhere"}, {Name: "dungeon", Display: "songsanity dungeon rewards", Hard: true}}, Description: "songs: songs (défaut), anywhere ou dungeon (difficile)"},
		{Name: "cows", Display: "cows", Default: "off", DefaultDisplay: "no cowsanity", Other: []Choice{{Name: "on", Display: "cowsanity"}}, Description: "cows: off (défaut) ou on"},
		{Name: "shops", Display: "shops", Default: "off", DefaultDisplay: "no shopsanity", Other: []Choice{{Name: "random", Display: "shopsanity random"}}, Description: "shops: off (défaut) ou random"},
		{Name: "scrubs", Display: "scrubs", Default: "off", DefaultDisplay: "no scrubsanity", Other: []Choice{{Name: "affordable", Display: "scrubsanity affordable"}}, Description: "scrubs: off (défaut) ou affordable"},
		{Name: "skulls", Display: "tokens", Default: "off", DefaultDisplay: "no tokensanity", Other: []Choice{{Name: "dungeons", Display: "tokensanity dungeon"}, {Name: "overworld", Display: "tokensanity overworld", Hard: true}, {Name: "all", Display: "tokensanity all", Hard: true}}, Description: "skulls: off (défaut), dungeons, overworld (difficile) ou all (difficile)"},
		{Name: "bosskeys", Display: "boss keys", Default: "dungeon", DefaultDisplay: "own dungeon boss keys", Other: []Choice{{Name: "anywhere", Display: "boss keys anywhere"}}, Description: "bosskeys: dungeon (défaut) ou anywhere"},
		{Name: "warps", Display: "warps/owls", Default: "off", DefaultDisplay: "vanilla warps", Other: []Choice{{Name: "on", Display: "shuffled warps"}}, Description: "warps: off (défaut) ou on"},
		{Name: "dot", Display: "Door of Time", Default: "open", DefaultDisplay: "open Door of Time", Other: []Choice{{Name: "closed", Display: "closed Door of Time"}}, Description: "dot: open (défaut) ou closed"},
		{Name: "fountain", Display: "fountain", Default: "closed", DefaultDisplay: "closed fountain", Other: []Choice{{Name: "open", Display: "open fountain"}}, Description: "fountain: closed (défaut) ou open"},
		{Name: "boss-er", Display: "boss ER", Default: "off", DefaultDisplay: "no boss ER", Other: []Choice{{Name: "on", Display: "boss ER"}}, Description: "boss-er: off (défaut) ou on"},
		{Name: "1major", Display: "1 major item per dungeon", Default: "off", DefaultDisplay: "no major items per dungeon restriction", Other: []Choice{{Name: "on", Display: "1 major item per dungeon"}}, Description: "1major: off (défaut) ou on"},
		{Name: "bridge", Display: "rainbow bridge", Default: "6meds", DefaultDisplay: "6 medallions bridge", Other: []Choice{
			{Name: "4meds", Display: "4 medallions bridge"},
			{Name: "5meds", Display: "5 medallions bridge"},
			{Name: "stones", Display: "3 stones bridge"},
			{Name: "vanilla", Display: "vanilla bridge"},
			{Name: "5dungeons", Display: "5 dungeons bridge"},
			{Name: "6dungeons", Display: "6 dungeons bridge"},
			{Name: "7dungeons", Display: "7 dungeons bridge"},
			{Name: "8dungeons", Display: "8 dungeons bridge"},
			{Name: "9dungeons", Display: "9 dungeons bridge"},
			{Name: "precompleted", Display: "2 pre-completed dungeons"},
		}, Description: "bridge: <4–6>meds (GBK 6 meds, défaut: 6), stones (3 stones, GBK 6 rewards), vanilla (GBK 6 meds), <5–9>dungeons, precompleted (9 rewards, 2 pre-completed dungeons, map/compass gives info)"},
		{Name: "shortcuts", Display: "shortcuts", Default: "off", DefaultDisplay: "no shortcuts", Other: []Choice{{Name: "random", Display: "random shortcuts", Hard: true}}, Description: "shortcuts: off (défaut) ou random (difficile)"},
		{Name: "mixed-er", Display: "mixed ER", Default: "off", DefaultDisplay: "no mixed ER", Other: []Choice{{Name: "on", Display: "mixed ER", Hard: true}}, Description: "mixed-er: off (défaut) ou on (difficile: intérieurs et grottos mixés)"},
		{Name: "keysanity", Display: "keysanity", Default: "off", DefaultDisplay: "own dungeon small keys", Other: []Choice{{Name: "on", Display: "small keys anywhere", Hard: true}, {Name: "keyrings", Display: "keyrings anywhere", Hard: true}}, Description: "keysanity: off (défaut), on (difficile) ou keyrings (difficile)"},
		{Name: "trials", Display: "trials", Default: "0", DefaultDisplay: "0 trials", Other: []Choice{{Name: "random", Display: "random trials", Hard: true}}, Description: "trials: 0 (défaut) ou random (difficile)"},
		{Name: "itempool", Display: "item pool", Default: "balanced", DefaultDisplay: "balanced item pool", Other: []Choice{{Name: "minimal", Display: "minimal item pool", Hard: true}, {Name: "scarce", Display: "scarce item pool", Hard: true}}, Description: "itempool: balanced (défaut), minimal (difficile) ou scarce (difficile)"},
		{Name: "reachable", Display: "reachable locations", Default: "all", DefaultDisplay: "all locations reachable", Other: []Choice{{Name: "required", Display: "required only", Hard: true}}, Description: "reachable: all (défaut) ou required (difficile)"},
	},
	Synthetic: francophoneSynthetic,
	Flags:     francophoneFlags,
}

var (
	francophoneSynthetic = []Setting{
		{Name: settingMixedDungeons, Display: "mixed dungeons", Default: "separate", DefaultDisplay: "dungeons not mixed", Other: []Choice{{Name: "mixed", Display: "dungeons mixed"}}, Description: "mixed-dungeons: separate (défaut) ou mixed"},
	}
	francophoneFlags = []string{flagHardSettingsOK, flagMQOK, flagHighSeedHasPicked, flagLowSeedHasPicked}
)

// Season 4 merges start and weird egg, adds enemy souls and regional
// keyrings, and widens the bridge conditions.
var francophoneS4Catalog = &Catalog{
	Settings: []Setting{
		{Name: "camc", Display: "CAMC", Default: "on", DefaultDisplay: "CAMC", Other: []Choice{{Name: "off", Display: "no CAMC"}}, Description: "camc: on (défaut) ou off"},
		{Name: "start-weirdegg", Display: "start & weird egg", Default: "random-skip", DefaultDisplay: "random start & Skip Child Zelda", Other: []Choice{{Name: "vanilla-shuffle", Display: "vanilla start & shuffled weird egg"}}, Description: "start-weirdegg: random-skip (défaut: random start & Skip Child Zelda) ou vanilla-shuffle (vanilla start & shuffled weird egg)"},
		{Name: "keysy", Display: "keysy", Default: "off", DefaultDisplay: "dungeon small keys not removed", Other: []Choice{{Name: "on", Display: "small keysy"}}, Description: "keysy: off (défaut) ou on"},
		{Name: "deku", Display: "open Deku", Default: "closed", DefaultDisplay: "closed Deku", Other: []Choice{{Name: "open", Display: "open Deku"}}, Description: "deku: closed (défaut) ou open"},
		{Name: "card", Display: "Gerudo card", Default: "vanilla", DefaultDisplay: "vanilla Gerudo card", Other: []Choice{{Name: "shuffle", Display: "shuffled Gerudo card"}}, Description: "card: vanilla (défaut) ou shuffle"},
		{Name: "ocarina", Display: "ocarina", Default: "startwith", DefaultDisplay: "start with ocarina", Other: []Choice{{Name: "shuffle", Display: "shuffled ocarinas & free scarecrow"}}, Description: "ocarina: startwith (défaut) ou shuffle (shuffled ocarinas & free scarecrow)"},
		{Name: "chubags", Display: "bombchu drops", Default: "off", DefaultDisplay: "no bombchu bag", Other: []Choice{{Name: "on", Display: "bombchu bag"}}, Description: "chubags: off (défaut) ou on"},
		{Name: "cows", Display: "cows", Default: "off", DefaultDisplay: "no cowsanity", Other: []Choice{{Name: "on", Display: "cowsanity"}}, Description: "cows: off (défaut) ou on"},
		{Name: "shops", Display: "shops", Default: "off", DefaultDisplay: "no shopsanity", Other: []Choice{{Name: "random", Display: "shopsanity random & wallet full"}}, Description: "shops: off (défaut) ou random (shopsanity random & wallet full)"},
		{Name: "scrubs", Display: "scrubs", Default: "off", DefaultDisplay: "no scrubsanity", Other: []Choice{{Name: "affordable", Display: "scrubsanity affordable"}}, Description: "scrubs: off (défaut) ou affordable"},
		{Name: "skulls", Display: "tokens", Default: "off", DefaultDisplay: "no tokensanity", Other: []Choice{{Name: "dungeons", Display: "tokensanity dungeon"}, {Name: "overworld", Display: "tokensanity overworld", Hard: true}, {Name: "all", Display: "tokensanity all", Hard: true}}, Description: "skulls: off (défaut), dungeons, overworld (difficile) ou all (difficile)"},
		{Name: "boss-er", Display: "boss ER", Default: "off", DefaultDisplay: "no boss ER", Other: []Choice{{Name: "on", Display: "boss ER"}}, Description: "boss-er: off (défaut) ou on"},
		{Name: "bridge", Display: "rainbow bridge", Default: "6meds", DefaultDisplay: "6 medallions bridge", Other: []Choice{
			{Name: "4meds-meds", Display: "4 medallions bridge (GBK 6 meds)"},
			{Name: "4meds-dungeons", Display: "4 medallions bridge (GBK 6 dungeons)"},
			{Name: "5meds-meds", Display: "5 medallions bridge (GBK 6 meds)"},
			{Name: "5meds-dungeons", Display: "5 medallions bridge (GBK 6 dungeons)"},
			{Name: "1stones", Display: "1 stone bridge"},
			{Name: "2stones", Display: "2 stones bridge"},
			{Name: "3stones", Display: "3 stones bridge"},
			{Name: "vanilla", Display: "vanilla bridge"},
			{Name: "5dungeons", Display: "5 dungeons bridge"},
			{Name: "6dungeons", Display: "6 dungeons bridge"},
			{Name: "7dungeons", Display: "7 dungeons bridge"},
			{Name: "8dungeons", Display: "8 dungeons bridge"},
			{Name: "9dungeons", Display: "9 dungeons bridge"},
			{Name: "1precompleted", Display: "1 pre-completed dungeon"},
			{Name: "2precompleted", Display: "2 pre-completed dungeons"},
			{Name: "3precompleted", Display: "3 pre-completed dungeons"},
		}, Description: "bridge: <4–6>meds (GBK 6 meds, défaut: 6), <1–3>stones (3 stones, GBK 6 rewards), vanilla (GBK 6 meds), <5–9>dungeons, <1-3>precompleted (9 rewards, map/compass gives info)"},
		{Name: "bosskeys", Display: "boss keys", Default: "dungeon", DefaultDisplay: "own dungeon boss keys", Other: []Choice{{Name: "anywhere", Display: "boss keys anywhere"}}, Description: "bosskeys: dungeon (défaut) ou anywhere"},
		{Name: "warps", Display: "warps/owls", Default: "off", DefaultDisplay: "vanilla warps", Other: []Choice{{Name: "on", Display: "shuffled warps"}}, Description: "warps: off (défaut) ou on"},
		{Name: "dot", Display: "Door of Time", Default: "open", DefaultDisplay: "open Door of Time", Other: []Choice{{Name: "closed", Display: "closed Door of Time"}}, Description: "dot: open (défaut) ou closed"},
		{Name: "fountain", Display: "fountain", Default: "closed", DefaultDisplay: "closed fountain", Other: []Choice{{Name: "open", Display: "open fountain"}}, Description: "fountain: closed (défaut) ou open"},
		{Name: "1major", Display: "1 major item per dungeon", Default: "off", DefaultDisplay: "no major items per dungeon restriction", Other: []Choice{{Name: "on", Display: "1 major item per dungeon"}}, Description: "1major: off (défaut) ou on"},
		{Name: "dungeon-er", Display: "dungeon ER", Default: "off", DefaultDisplay: "no dungeon ER", Other: []Choice{{Name: "on", Display: "dungeon ER"}}, Description: "dungeon-er: off (défaut) ou on"},
		{Name: "songs", Display: "songs", Default: "songs", DefaultDisplay: "songs on songs", Other: []Choice{{Name: "anywhere", Display: "songsanity anywhere"}, {Name: "dungeon", Display: "songsanity dungeon rewards", Hard: true}}, Description: "songs: songs (défaut), anywhere ou dungeon (difficile)"},
		{Name: "souls", Display: "enemy souls", Default: "off", DefaultDisplay: "no enemy souls", Other: []Choice{{Name: "bosses", Display: "boss souls"}, {Name: "all-anywhere", Display: "all enemy souls (anywhere)", Hard: true}, {Name: "all-regional", Display: "all enemy souls (regional)", Hard: true}}, Description: "souls: off (défaut), bosses, all-anywhere (difficile) ou all-regional (difficile)"},
		{Name: "itempool", Display: "item pool", Default: "balanced", DefaultDisplay: "balanced item pool", Other: []Choice{{Name: "minimal", Display: "minimal item pool", Hard: true}, {Name: "scarce", Display: "scarce item pool", Hard: true}}, Description: "itempool: balanced (défaut), minimal (difficile) ou scarce (difficile)"},
		{Name: "shortcuts", Display: "shortcuts", Default: "off", DefaultDisplay: "no shortcuts", Other: []Choice{{Name: "random", Display: "random shortcuts", Hard: true}}, Description: "shortcuts: off (défaut) ou random (difficile)"},
		{Name: "keysanity", Display: "keysanity", Default: "off", DefaultDisplay: "own dungeon small keys", Other: []Choice{{Name: "on", Display: "small keys anywhere", Hard: true}, {Name: "keyrings-anywhere", Display: "keyrings anywhere", Hard: true}, {Name: "keyrings-regional", Display: "keyrings regional", Hard: true}}, Description: "keysanity: off (défaut), on (difficile), keyrings-anywhere (difficile) ou keyrings-regional (difficile)"},
		{Name: "trials", Display: "trials", Default: "0", DefaultDisplay: "0 trials", Other: []Choice{{Name: "random", Display: "random trials", Hard: true}}, Description: "trials: 0 (défaut) ou random (difficile)"},
		{Name: "mixed-er", Display: "mixed ER", Default: "off", DefaultDisplay: "no mixed ER", Other: []Choice{{Name: "on", Display: "mixed ER", Hard: true}}, Description: "mixed-er: off (défaut) ou on (difficile: intérieurs et grottos mixés)"},
		{Name: "reachable", Display: "reachable locations", Default: "all", DefaultDisplay: "all locations reachable", Other: []Choice{{Name: "required", Display: "required only", Hard: true}}, Description: "reachable: all (défaut) ou required (difficile)"},
	},
	Synthetic: francophoneSynthetic,
	Flags:     francophoneFlags,
}
