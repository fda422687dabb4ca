package rules

import "testing"

func TestNextState(t *testing.T) {
	tests := []struct {
		name      string
		state     uint8
		neighbors int
		want      uint8
	}{
		{"live with 0 dies", Alive, 0, Dead},
		{"live with 1 dies", Alive, 1, Dead},
		{"live with 2 lives", Alive, 2, Alive},
		{"live with 3 lives", Alive, 3, Alive},
		{"live with 4 dies", Alive, 4, Dead},
		{"live with 8 dies", Alive, 8, Dead},
		{"dead with 3 is born", Dead, 3, Alive},
		{"dead with 2 stays dead", Dead, 2, Dead},
		{"dead with 4 stays dead", Dead, 4, Dead},
		{"dead with 0 stays dead", Dead, 0, Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextState(tt.state, tt.neighbors); got != tt.want {
				t.Errorf("NextState(%d, %d) = %d, want %d", tt.state, tt.neighbors, got, tt.want)
			}
		})
	}
}
