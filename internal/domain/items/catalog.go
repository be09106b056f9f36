package items

var catalog = []Item{
	{
		Name: CoinName, Glyph: "🪙", Description: "money",
		Rarity: Common, Kind: Countable,
	},
	{
		Name: "grass", AltNames: []string{"herb"}, Glyph: "🌿", Description: "grows everywhere, edible if you insist",
		Rarity: Common, Kind: Countable, Price: 5,
		Effect: Effect{Kind: EffectHungerRestore, Amount: 2}, Consumable: true, Tradeable: true,
		TaskEligible: true, TaskCoin: Range{Min: 2, Max: 5}, Exchange: Range{Min: 3, Max: 8},
	},
	{
		Name: "mushroom", Glyph: "🍄", Description: "found on long walks",
		Rarity: Common, Kind: Countable, Price: 8, Tradeable: true,
		TaskEligible: true, TaskCoin: Range{Min: 3, Max: 6}, Exchange: Range{Min: 5, Max: 10},
	},
	{
		Name: "water", Glyph: "💧", Description: "plenty of it when it rains",
		Rarity: Common, Kind: Countable, Price: 3, Tradeable: true,
		TaskEligible: true, TaskCoin: Range{Min: 1, Max: 3},
	},
	{
		Name: "tea-leaf", AltNames: []string{"tealeaf"}, Glyph: "🍃", Description: "dry it and brew it",
		Rarity: Common, Kind: Countable, Price: 6, Tradeable: true,
		TaskEligible: true, TaskCoin: Range{Min: 2, Max: 5}, Exchange: Range{Min: 4, Max: 9},
	},
	{
		Name: "butterfly", Glyph: "🦋", Description: "caught on a walk",
		Rarity: Common, Kind: Countable, Price: 4, Tradeable: true,
		TaskEligible: true, TaskCoin: Range{Min: 1, Max: 4},
	},
	{
		Name: "snowball", Glyph: "❄️", Description: "only in frosty weather",
		Rarity: Uncommon, Kind: Countable, Price: 2, Tradeable: true,
		Exchange: Range{Min: 1, Max: 4},
	},
	{
		Name: "bone", Glyph: "🦴", Description: "dogs love it",
		Rarity: Uncommon, Kind: Countable, Price: 20, Tradeable: true,
		Craft: map[string]int64{"mushroom": 2, "grass": 3},
	},
	{
		Name: "bread", AltNames: []string{"loaf"}, Glyph: "🍞", Description: "basic food",
		Rarity: Common, Kind: Countable, Price: 25,
		Craft:  map[string]int64{"grass": 3, "water": 1},
		Effect: Effect{Kind: EffectHungerRestore, Amount: 10}, Consumable: true, Tradeable: true,
		TaskEligible: true, TaskCoin: Range{Min: 10, Max: 20}, Exchange: Range{Min: 15, Max: 30},
	},
	{
		Name: "sandwich", Glyph: "🥪", Description: "two breads and something green",
		Rarity: Uncommon, Kind: Countable, Price: 60,
		Craft:  map[string]int64{"bread": 2, "grass": 1},
		Effect: Effect{Kind: EffectHungerRestore, Amount: 25}, Consumable: true, Tradeable: true,
	},
	{
		Name: "pizza", Glyph: "🍕", Description: "mushroom pizza",
		Rarity: Rare, Kind: Countable, Price: 120,
		Craft:  map[string]int64{"bread": 1, "mushroom": 3, "water": 1},
		Effect: Effect{Kind: EffectHungerRestore, Amount: 40}, Consumable: true, Tradeable: true,
	},
	{
		Name: "taco", Glyph: "🌮", Description: "crunchy",
		Rarity: Uncommon, Kind: Countable, Price: 70,
		Craft:  map[string]int64{"bread": 1, "grass": 2},
		Effect: Effect{Kind: EffectHungerRestore, Amount: 30}, Consumable: true, Tradeable: true,
	},
	{
		Name: "soup", Glyph: "🍲", Description: "warm mushroom soup",
		Rarity: Uncommon, Kind: Countable, Price: 50,
		Craft:  map[string]int64{"water": 3, "mushroom": 2},
		Effect: Effect{Kind: EffectHungerRestore, Amount: 20}, Consumable: true, Tradeable: true,
	},
	{
		Name: "tea", Glyph: "🍵", Description: "wakes you up a little",
		Rarity: Common, Kind: Countable, Price: 30,
		Craft:  map[string]int64{"tea-leaf": 3, "water": 1},
		Effect: Effect{Kind: EffectFatigueRestore, Amount: 10}, Consumable: true, Tradeable: true,
		TaskEligible: true, TaskCoin: Range{Min: 8, Max: 15},
	},
	{
		Name: "energy-drink", AltNames: []string{"energy"}, Glyph: "⚡", Description: "wakes you up a lot",
		Rarity: Uncommon, Kind: Countable, Price: 80,
		Craft:  map[string]int64{"water": 2, "butterfly": 3},
		Effect: Effect{Kind: EffectFatigueRestore, Amount: 25}, Consumable: true, Tradeable: true,
	},
	{
		Name: "medkit", Glyph: "🩹", Description: "restores health",
		Rarity: Rare, Kind: Countable, Price: 150,
		Craft:  map[string]int64{"grass": 5, "mushroom": 5},
		Effect: Effect{Kind: EffectHealthRestore, Amount: 30}, Consumable: true, Tradeable: true,
	},
	{
		Name: "moonshine", Glyph: "🍶", Description: "no more fatigue, less health",
		Rarity: Rare, Kind: Countable, Price: 100,
		Craft:  map[string]int64{"mushroom": 4, "water": 2},
		Effect: Effect{Kind: EffectFatigueResetHealthCost, Amount: 15}, Consumable: true, Tradeable: true,
	},
	{
		Name: "boost", Glyph: "⭐", Description: "a pile of experience",
		Rarity: Epic, Kind: Countable, Price: 500,
		Craft:  map[string]int64{"butterfly": 10, "snowball": 5},
		Effect: Effect{Kind: EffectXPBoost}, Consumable: true, Tradeable: true,
	},
	{
		Name: RewardBox, Glyph: "📦", Description: "open it and see",
		Rarity: Rare, Kind: Countable, Price: 200,
		Effect: Effect{Kind: EffectRandomBoxOpen}, Consumable: true, Tradeable: true,
	},
	{
		Name: "clover", Glyph: "🍀", Description: "makes you luckier",
		Rarity: Legendary, Kind: Countable, Price: 2000,
		Effect: Effect{Kind: EffectLuckBoost, Amount: 1}, Consumable: true, Tradeable: true,
	},
	{
		Name: "bicycle", AltNames: []string{"bike"}, Glyph: "🚲", Description: "shortens the current walk",
		Rarity: Epic, Kind: Countable, Price: 700,
		Effect: Effect{Kind: EffectActionTimeReduction}, Consumable: true, Tradeable: true,
	},
	{
		Name: "pill", Glyph: "💊", Description: "nobody knows what it does yet",
		Rarity: Epic, Kind: Countable,
		Effect: Effect{Kind: EffectNotImplemented}, Consumable: true,
	},
	{
		Name: "umbrella", Glyph: "☂️", Description: "keeps your mood dry on rainy walks",
		Rarity: Uncommon, Kind: Usable, Price: 150, Tradeable: true,
		Craft: map[string]int64{"butterfly": 5, "grass": 10},
		Decay: [2]float64{2, 6},
	},
	{
		Name: "ticket", Glyph: "🎟️", Description: "lets you into the casino once",
		Rarity: Uncommon, Kind: Countable, Price: 50,
		Craft: map[string]int64{"butterfly": 3, "tea-leaf": 3},
	},
}
