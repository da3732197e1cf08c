// Package content holds the marketing copy for the Quad campus tour.
// Everything here is plain data; the render package decides presentation.
package content

// Feature is one card in the feature strip
type Feature struct {
	Icon  rune
	Title string
	Blurb string
}

// Testimonial is a rotating student quote
type Testimonial struct {
	Quote  string
	Name   string
	Campus string
}

// Stat is one figure in the stats strip
type Stat struct {
	Value string
	Label string
}

// PlanRow is one comparison line between the two tiers
type PlanRow struct {
	Feature string
	Free    bool
	Plus    bool
}

// Words is the ordered list the typewriter headline cycles through
var Words = []string{"feed", "events", "clubs", "study groups", "game nights"}

// Hero copy
const (
	IntroGreeting  = "hey, you made it."
	HeroTitle      = "Q U A D"
	HeroTagline    = "the social network that ends at the campus gates"
	HeadlinePrefix = "one app for your "
	FooterHint     = "c compare plans · m mute · q quit"
	ResizeNotice   = "terminal too small — stretch me out a bit"
)

// Features shown in the feature strip
var Features = []Feature{
	{Icon: '⚡', Title: "Campus-only feed", Blurb: "Verified .edu accounts, nobody else"},
	{Icon: '📍', Title: "Tonight board", Blurb: "Every event within walking distance"},
	{Icon: '🤝', Title: "Study matching", Blurb: "Find your section's 3am problem-set crew"},
}

// Testimonials rotate under the feature strip
var Testimonials = []Testimonial{
	{Quote: "I found my entire intramural team in one afternoon.", Name: "Maya R.", Campus: "Hillcrest College"},
	{Quote: "The tonight board replaced four group chats. Four.", Name: "Dev P.", Campus: "Lakeside State"},
	{Quote: "Finally a feed that isn't my aunt's casserole photos.", Name: "Jordan K.", Campus: "North Quad University"},
}

// Stats are always populated figures, never placeholders
var Stats = []Stat{
	{Value: "120+", Label: "campuses"},
	{Value: "38k", Label: "students"},
	{Value: "4.8★", Label: "app rating"},
}

// Comparison tiers
const (
	PlanFreeName = "Quad"
	PlanPlusName = "Quad Plus"
)

// PlanRows drive the comparison modal, top to bottom
var PlanRows = []PlanRow{
	{Feature: "Campus feed & tonight board", Free: true, Plus: true},
	{Feature: "Club pages & event RSVPs", Free: true, Plus: true},
	{Feature: "Study group matching", Free: true, Plus: true},
	{Feature: "Cross-campus rivalry feeds", Free: false, Plus: true},
	{Feature: "Priority event tickets", Free: false, Plus: true},
	{Feature: "Custom profile themes", Free: false, Plus: true},
}

// PhoneFrames is the looping feed animation inside the phone frame
// Each frame is a slice of rows, drawn top-aligned and left-padded by render
var PhoneFrames = [][]string{
	{
		"  quad · campus feed  ",
		"──────────────────────",
		" ◉ trivia night @ 8   ",
		"   union hall · 23 in ",
		"                      ",
		" ◉ cs370 study group  ",
		"   looking for 2 more ",
		"                      ",
		" ◉ club fair photos   ",
		"   ♥ 214              ",
	},
	{
		"  quad · campus feed  ",
		"──────────────────────",
		" ◉ cs370 study group  ",
		"   looking for 2 more ",
		"                      ",
		" ◉ club fair photos   ",
		"   ♥ 215              ",
		"                      ",
		" ◉ midnight pancakes  ",
		"   dining hall b · now",
	},
	{
		"  quad · campus feed  ",
		"──────────────────────",
		" ◉ club fair photos   ",
		"   ♥ 217              ",
		"                      ",
		" ◉ midnight pancakes  ",
		"   dining hall b · now",
		"                      ",
		" ◉ rec center 5v5     ",
		"   2 spots open       ",
	},
}
