package zone

// builtin holds the records the library ships with, so the common
// zones resolve without any provider. Weekdays are Monday=0, so
// Sunday is 6.
var builtin = MemStore{
	"UTC": {
		Std: MustOffset(1, 0, 0, false),
	},
	// Second Sunday of March 02:00 to first Sunday of November 02:00.
	"America/New_York": {
		Std: MustOffset(-1, 5, 0, false),
		DST: true,
		Zone: NewDstZone(
			MustTransitionRule(3, 6, false, true, 2),
			MustTransitionRule(11, 6, false, false, 2),
			MustOffset(-1, 5, 0, false),
		),
	},
	// Last Sunday of March 02:00 to last Sunday of October 03:00.
	"Europe/Berlin": {
		Std: MustOffset(1, 1, 0, false),
		DST: true,
		Zone: NewDstZone(
			MustTransitionRule(3, 6, true, false, 2),
			MustTransitionRule(10, 6, true, false, 3),
			MustOffset(1, 1, 0, false),
		),
	},
	// Southern hemisphere: first Sunday of October 02:00 to first
	// Sunday of April 03:00.
	"Australia/Sydney": {
		Std: MustOffset(1, 10, 0, false),
		DST: true,
		Zone: NewDstZone(
			MustTransitionRule(10, 6, false, false, 2),
			MustTransitionRule(4, 6, false, false, 3),
			MustOffset(1, 10, 0, false),
		),
	},
	// Irregular: daylight adds 30 minutes on top of +10:30.
	"Australia/Lord_Howe": {
		Std: MustOffset(1, 10, 30, true),
		DST: true,
		Zone: NewDstZone(
			MustTransitionRule(10, 6, false, false, 2),
			MustTransitionRule(4, 6, false, false, 2),
			MustOffset(1, 10, 30, true),
		),
	},
	// Irregular: daylight adds two hours on top of +00:00.
	"Antarctica/Troll": {
		Std: MustOffset(1, 0, 0, true),
		DST: true,
		Zone: NewDstZone(
			MustTransitionRule(3, 6, true, false, 1),
			MustTransitionRule(10, 6, true, false, 3),
			MustOffset(1, 0, 0, true),
		),
	},
}

// Builtin returns a copy of the built-in record set, usable as a
// Provider or as seed data for a file store.
func Builtin() MemStore {
	out := make(MemStore, len(builtin))
	for name, rec := range builtin {
		out[name] = rec
	}
	return out
}
