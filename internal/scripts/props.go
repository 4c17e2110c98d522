package scripts

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// propColor reads an [r, g, b] or [r, g, b, a] list of 0-255 numbers.
func propColor(props map[string]any, key string, fallback rl.Color) rl.Color {
	list, ok := props[key].([]any)
	if !ok || len(list) < 3 {
		return fallback
	}
	ch := [4]uint8{0, 0, 0, 255}
	for i := 0; i < len(list) && i < 4; i++ {
		switch v := list[i].(type) {
		case int:
			ch[i] = uint8(v)
		case float64:
			ch[i] = uint8(v)
		default:
			return fallback
		}
	}
	return rl.NewColor(ch[0], ch[1], ch[2], ch[3])
}

func colorProp(c rl.Color) []any {
	return []any{int(c.R), int(c.G), int(c.B), int(c.A)}
}
