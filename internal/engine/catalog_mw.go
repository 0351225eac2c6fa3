package engine

var multiworldS3Catalog = &Catalog{
	Settings: []Setting{
		{Name: "wincon", Display: "win conditions", Default: "meds", DefaultDisplay: "default wincons", Other: []Choice{{Name: "scrubs", Display: "Scrubs wincons"}, {Name: "th", Display: "Triforce Hunt"}}, Description: "wincon: meds (default: 6 Medallion Bridge + Keysy BK), scrubs (3 Stone Bridge + LACS BK), or th (Triforce Hunt 25/30)"},
		{Name: "dungeons", Display: "dungeons", Default: "tournament", DefaultDisplay: "tournament dungeons", Other: []Choice{{Name: "skulls", Display: "dungeon tokens"}, {Name: "keyrings", Display: "keyrings"}}, Description: "dungeons: tournament (default: keys shuffled in own dungeon), skulls (vanilla keys, dungeon tokens), or keyrings (small keyrings anywhere, vanilla boss keys)"},
		{Name: "er", Display: "entrance rando", Default: "off", DefaultDisplay: "no ER", Other: []Choice{{Name: "dungeon", Display: "dungeon ER"}}, Description: "er: off (default) or dungeon"},
		{Name: "trials", Display: "trials", Default: "0", DefaultDisplay: "0 trials", Other: []Choice{{Name: "2", Display: "2 trials"}}, Description: "trials: 0 (default) or 2"},
		{Name: "shops", Display: "shops", Default: "4", DefaultDisplay: "shops 4", Other: []Choice{{Name: "off", Display: "no shops"}}, Description: "shops: 4 (default) or off"},
		{Name: "scrubs", Display: "scrubs", Default: "affordable", DefaultDisplay: "affordable scrubs", Other: []Choice{{Name: "off", Display: "no scrubs"}}, Description: "scrubs: affordable (default) or off"},
		{Name: "fountain", Display: "fountain", Default: "closed", DefaultDisplay: "closed fountain", Other: []Choice{{Name: "open", Display: "open fountain"}}, Description: "fountain: closed (default) or open"},
		{Name: "spawn", Display: "spawns", Default: "tot", DefaultDisplay: "ToT spawns", Other: []Choice{{Name: "random", Display: "random spawns & starting age"}}, Description: "spawn: tot (default: adult start, vanilla spawns) or random (random spawns and starting age)"},
	},
}

var multiworldS4Catalog = &Catalog{
	Settings: []Setting{
		{Name: "gbk", Display: "Ganon boss key", Default: "meds", DefaultDisplay: "Ganon bk on 6 medallions", Other: []Choice{{Name: "stones", Display: "Ganon bk on 3 stones"}, {Name: "th", Display: "Triforce Hunt"}}, Description: "gbk (Ganon boss key): meds (default: 6 medallions), stones (3 stones), or th (Triforce Hunt 25/30)"},
		{Name: "bridge", Display: "rainbow bridge", Default: "meds", DefaultDisplay: "6 medallions bridge", Other: []Choice{{Name: "dungeons", Display: "7 dungeon rewards bridge"}, {Name: "vanilla", Display: "vanilla bridge"}}, Description: "bridge: meds (default: 6 medallions), dungeons (7 rewards), or vanilla"},
		{Name: "trials", Display: "trials", Default: "0", DefaultDisplay: "0 trials", Other: []Choice{{Name: "2", Display: "2 trials"}}, Description: "trials: 0 (default) or 2"},
		{Name: "bosskeys", Display: "boss keys", Default: "dungeon", DefaultDisplay: "own dungeon boss keys", Other: []Choice{{Name: "regional", Display: "regional boss keys"}, {Name: "vanilla", Display: "vanilla boss keys"}}, Description: "bosskeys: dungeon (default), regional, or vanilla"},
		{Name: "smallkeys", Display: "small keys", Default: "dungeon", DefaultDisplay: "own dungeon small keys", Other: []Choice{{Name: "regional", Display: "regional keyrings"}, {Name: "vanilla", Display: "vanilla small keys"}}, Description: "smallkeys: dungeon (default), regional (with keyrings), or vanilla"},
		{Name: "deku", Display: "open Deku", Default: "open", DefaultDisplay: "open Deku", Other: []Choice{{Name: "closed", Display: "closed Deku"}}, Description: "deku: open (default) or closed"},
		{Name: "fountain", Display: "fountain", Default: "closed", DefaultDisplay: "closed fountain", Other: []Choice{{Name: "open", Display: "open fountain"}}, Description: "fountain: closed (default) or open"},
		{Name: "spawn", Display: "spawns", Default: "tot", DefaultDisplay: "ToT spawns", Other: []Choice{{Name: "random", Display: "random spawns & starting age"}}, Description: "spawn: tot (default: adult start, vanilla spawns) or random (random spawns and starting age)"},
		{Name: "dungeon-er", Display: "dungeon entrance rando", Default: "off", DefaultDisplay: "no dungeon ER", Other: []Choice{{Name: "on", Display: "dungeon ER"}}, Description: "dungeon-er: off (default) or on"},
		{Name: "warps", Display: "warp song entrance rando", Default: "off", DefaultDisplay: "vanilla warp songs", Other: []Choice{{Name: "on", Display: "shuffled warp songs"}}, Description: "warps: off (default) or on"},
		{Name: "chubags", Display: "bombchu drops", Default: "off", DefaultDisplay: "no bombchu drops", Other: []Choice{{Name: "on", Display: "bombchu drops"}}, Description: "chubags: off (default) or on"},
		{Name: "shops", Display: "shops", Default: "4", DefaultDisplay: "shops 4", Other: []Choice{{Name: "off", Display: "no shops"}}, Description: "shops: 4 (default) or off"},
		{Name: "skulls", Display: "tokens", Default: "off", DefaultDisplay: "no tokens", Other: []Choice{{Name: "dungeons", Display: "dungeon tokens"}}, Description: "skulls: off (default) or dungeons"},
		{Name: "scrubs", Display: "scrubs", Default: "affordable", DefaultDisplay: "affordable scrubs", Other: []Choice{{Name: "off", Display: "no scrubs"}}, Description: "scrubs: affordable (default) or off"},
		{Name: "cows", Display: "cows", Default: "off", DefaultDisplay: "no cows", Other: []Choice{{Name: "on", Display: "cows"}}, Description: "cows: off (default) or on"},
		{Name: "card", Display: "Gerudo card", Default: "vanilla", DefaultDisplay: "vanilla Gerudo card", Other: []Choice{{Name: "shuffle", Display: "shuffled Gerudo card"}}, Description: "card: vanilla (default) or shuffle"},
		{Name: "merchants", Display: "merchants", Default: "off", DefaultDisplay: "no merchants", Other: []Choice{{Name: "shuffle", Display: "shuffled merchants"}}, Description: "merchants: off (default) or shuffle"},
		{Name: "frogs", Display: "frogs", Default: "off", DefaultDisplay: "no frogs", Other: []Choice{{Name: "shuffle", Display: "shuffled frogs"}}, Description: "frogs: off (default) or shuffle"},
		{Name: "camc", Display: "CAMC", Default: "texture", DefaultDisplay: "chest texture matches contents", Other: []Choice{{Name: "off", Display: "vanilla chest appearances"}, {Name: "both", Display: "chest size & texture match contents"}}, Description: "camc (Chest Appearance Matches Contents): texture (default), off, or both (size & texture)"},
		{Name: "hints", Display: "hint type", Default: "path", DefaultDisplay: "path hints", Other: []Choice{{Name: "woth", Display: "Way of the Hero hints"}}, Description: "hints: path (default) or woth"},
	},
}
