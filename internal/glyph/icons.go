// internal/glyph/icons.go
package glyph

// iconArt is the built-in icon set, referenced in text as :name:.
// Names are case sensitive: lower case is outlined, upper case is filled.
var iconArt = map[string][]string{
	"heart": {
		"........",
		"........",
		".##.##..",
		"#..#..#.",
		"#.....#.",
		"#.....#.",
		".#...#..",
		"..#.#...",
		"...#....",
		"........",
		"........",
	},
	"HEART": {
		"........",
		"........",
		".##.##..",
		"#######.",
		"#######.",
		"#######.",
		".#####..",
		"..###...",
		"...#....",
		"........",
		"........",
	},
	"heart2": {
		"................",
		"..###.....###...",
		".#...#...#...#..",
		"#.....#.#.....#.",
		"#......#......#.",
		"#.............#.",
		".#...........#..",
		"..#.........#...",
		"...#.......#....",
		"....##...##.....",
		"......###.......",
	},
	"HEART2": {
		"................",
		"..###.....###...",
		".#####...#####..",
		"#######.#######.",
		"###############.",
		"###############.",
		".#############..",
		"..###########...",
		"...#########....",
		"....#######.....",
		"......###.......",
	},
	"happy": {
		"........",
		"..####..",
		".#....#.",
		"#......#",
		"#.#..#.#",
		"#......#",
		"#.#..#.#",
		"#..##..#",
		".#....#.",
		"..####..",
		"........",
	},
	"happy2": {
		"................",
		".....######.....",
		"...##......##...",
		"..#..........#..",
		".#...##..##...#.",
		".#............#.",
		".#..#......#..#.",
		".#...#....#...#.",
		"..#...####...#..",
		"...##......##...",
		".....######.....",
	},
	"sad": {
		"........",
		"..####..",
		".#....#.",
		"#......#",
		"#.#..#.#",
		"#......#",
		"#..##..#",
		"#.#..#.#",
		".#....#.",
		"..####..",
		"........",
	},
	"wink": {
		"........",
		"..####..",
		".#....#.",
		"#......#",
		"#.#.##.#",
		"#......#",
		"#.#..#.#",
		"#..##..#",
		".#....#.",
		"..####..",
		"........",
	},
	"ball": {
		"........",
		"..####..",
		".######.",
		"########",
		"########",
		"########",
		"########",
		"########",
		".######.",
		"..####..",
		"........",
	},
	"star": {
		"........",
		"...#....",
		"...#....",
		"..###...",
		"#######.",
		".#####..",
		"..###...",
		".##.##..",
		".#...#..",
		"........",
		"........",
	},
	"note": {
		"........",
		"....##..",
		"....#.#.",
		"....#..#",
		"....#...",
		"....#...",
		"....#...",
		".####...",
		"#####...",
		".###....",
		"........",
	},
	"sun": {
		"...#....",
		"#..#..#.",
		".#...#..",
		"..###...",
		".#####..",
		"########",
		".#####..",
		"..###...",
		".#...#..",
		"#..#..#.",
		"...#....",
	},
	"skull": {
		"....#######.....",
		"...#.......#....",
		"..#.........#...",
		"..#..##.##..#...",
		"..#..##.##..#...",
		"..#.........#...",
		"...#...#...#....",
		"....#.....#.....",
		"....#.#.#.#.....",
		"....#######.....",
		"................",
	},
	"coffee": {
		"........",
		"..#.#...",
		".#.#....",
		"........",
		"######..",
		"#....###",
		"#....#.#",
		"#....###",
		".####...",
		"########",
		"........",
	},
	"check": {
		"........",
		"........",
		".......#",
		"......##",
		".....##.",
		"#...##..",
		"##.##...",
		".###....",
		"..#.....",
		"........",
		"........",
	},
	"cross": {
		"........",
		"........",
		"#.....#.",
		".#...#..",
		"..#.#...",
		"...#....",
		"..#.#...",
		".#...#..",
		"#.....#.",
		"........",
		"........",
	},
	"arrow_left": {
		"........",
		"........",
		"...#....",
		"..##....",
		".#######",
		"########",
		".#######",
		"..##....",
		"...#....",
		"........",
		"........",
	},
	"arrow_right": {
		"........",
		"........",
		"....#...",
		"....##..",
		"#######.",
		"########",
		"#######.",
		"....##..",
		"....#...",
		"........",
		"........",
	},
	"arrow_up": {
		"...##...",
		"..####..",
		".######.",
		"########",
		"..####..",
		"..####..",
		"..####..",
		"..####..",
		"..####..",
		"..####..",
		"........",
	},
	"arrow_down": {
		"........",
		"..####..",
		"..####..",
		"..####..",
		"..####..",
		"..####..",
		"..####..",
		"########",
		".######.",
		"..####..",
		"...##...",
	},
	"bicycle": {
		"........................",
		"..........######........",
		"...........#............",
		"......#####.#...........",
		".....#.....#.#..........",
		"..####....#...####......",
		".#....#..#...#.#..#.....",
		"#...#..##...#..#...#....",
		"#.......#..#...#...#....",
		".#....#.....#.#...#.....",
		"..####.......####.......",
	},
	"bicycle_r": {
		"........................",
		"........######..........",
		"............#...........",
		"...........#.#####......",
		"..........#.#.....#.....",
		"......####...#....####..",
		".....#..#.#...#..#....#.",
		"....#...#..#...##..#...#",
		"....#...#...#..#.......#",
		".....#...#.#.....#....#.",
		".......####.......####..",
	},
}
