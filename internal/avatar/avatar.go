// Package avatar selects a default profile image for new accounts.
package avatar

import "math/rand/v2"

// defaults mirrors the bundled avatar assets shipped with the client.
var defaults = []string{
	"avatar-1.png",
	"avatar-2.png",
	"avatar-3.png",
	"avatar-4.png",
	"avatar-5.png",
	"avatar-6.png",
	"avatar-7.png",
	"avatar-8.png",
}

type Picker struct {
	basePath string
}

func NewPicker(basePath string) *Picker {
	return &Picker{basePath: basePath}
}

// Pick returns the configured base path joined with a uniformly random
// default avatar filename.
func (p *Picker) Pick() string {
	return p.basePath + defaults[rand.IntN(len(defaults))]
}
