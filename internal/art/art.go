// Package art holds the static ASCII assets: the house illustration and
// the sun animation frames.
package art

var house = []string{
	`           ______    `,
	`          /      \   `,
	`         /        \  `,
	`        /__________\ `,
	`        |  __  __  | `,
	`        | |  ||  | | `,
	`        | |__||__| | `,
	`        |   ____   | `,
	`        |  |    |  | `,
	`  ______|__|____|__|______  `,
}

// House returns the static house illustration drawn at the center of the
// scene on every tick.
func House() []string {
	return house
}

// SunFrames are the ordered frames of the sun shimmer cycle. Lines may
// differ in width; the renderer centers on the widest.
var SunFrames = [][]string{
	{
		`  \ | /  `,
		`-- (_) --`,
		`  / | \  `,
	},
	{
		`   \|/   `,
		` - (_) - `,
		`   /|\   `,
	},
	{
		`  ' | '  `,
		` ~ (_) ~ `,
		`  . | .  `,
	},
}
