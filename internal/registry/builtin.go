package registry

// DefaultArena is the layout used when none is configured.
const DefaultArena = "classic"

func init() {
	Register("classic", func() Layout {
		return Layout{
			Name:         "classic",
			Title:        "Classic Duel",
			FieldW:       900,
			FieldH:       500,
			DividerWidth: 10,
			TopMargin:    55,
			BottomMargin: 15,
			Spawn:        [2]Point{{X: 100, Y: 300}, {X: 700, Y: 300}},
		}
	})

	Register("open", func() Layout {
		return Layout{
			Name:         "open",
			Title:        "Open Space",
			FieldW:       900,
			FieldH:       500,
			DividerWidth: 10,
			TopMargin:    30,
			BottomMargin: 0,
			Spawn:        [2]Point{{X: 100, Y: 230}, {X: 745, Y: 230}},
		}
	})
}
