package game

import "testing"

func TestAIStepTracksBall(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name    string
		aiPos   int
		ballRow int
		want    int
	}{
		{"ball below, step down", 10, 15, 11},
		{"ball above, step up", 10, 5, 9},
		{"aligned, no movement", 10, 10, 10},
		{"adjacent, single step closes gap", 10, 11, 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := testState(rules)
			a := &aiActor{state: s, rules: rules}

			s.AIPos = tc.aiPos
			s.BallRow = tc.ballRow

			a.step()
			if s.AIPos != tc.want {
				t.Errorf("AIPos = %d, expected %d", s.AIPos, tc.want)
			}
			if s.PrevAIPos != tc.aiPos {
				t.Errorf("PrevAIPos = %d, expected %d", s.PrevAIPos, tc.aiPos)
			}
		})
	}
}

func TestAIStepRespectsBounds(t *testing.T) {
	rules := DefaultRules()
	half := rules.PaddleWidth / 2

	t.Run("pinned at top edge", func(t *testing.T) {
		s := testState(rules)
		a := &aiActor{state: s, rules: rules}
		s.AIPos = half
		s.BallRow = rules.FieldTop

		a.step()
		if s.AIPos != half {
			t.Errorf("AIPos = %d, expected to stay at %d", s.AIPos, half)
		}
	})

	t.Run("pinned at bottom edge", func(t *testing.T) {
		s := testState(rules)
		a := &aiActor{state: s, rules: rules}
		s.AIPos = s.BottomRow - half
		s.BallRow = s.BottomRow

		a.step()
		if s.AIPos != s.BottomRow-half {
			t.Errorf("AIPos = %d, expected to stay at %d", s.AIPos, s.BottomRow-half)
		}
	})
}
