package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestReconcile(t *testing.T) {
	cases := []struct {
		name       string
		primary    *fakeSource
		secondary  *fakeSource
		input      string
		wantOK     bool
		wantName   string
		wantSource string
	}{
		{
			name:       "agreement trusts primary",
			primary:    &fakeSource{name: "meraki", catalog: []string{"Ahri", "Kaisa"}},
			secondary:  &fakeSource{name: "ddragon", catalog: []string{"Kaisa", "Ahri"}},
			input:      "kai'sa",
			wantOK:     true,
			wantName:   "Kaisa",
			wantSource: "meraki",
		},
		{
			name:       "disagreement trusts secondary",
			primary:    &fakeSource{name: "meraki", catalog: []string{"Nunu"}},
			secondary:  &fakeSource{name: "ddragon", catalog: []string{"NunuWillump"}},
			input:      "Nunu & Willump",
			wantOK:     true,
			wantName:   "NunuWillump",
			wantSource: "ddragon",
		},
		{
			name:       "only primary catalog available",
			primary:    &fakeSource{name: "meraki", catalog: []string{"Ahri"}},
			secondary:  &fakeSource{name: "ddragon", catalogErr: errMissing},
			input:      "Ahry",
			wantOK:     true,
			wantName:   "Ahri",
			wantSource: "meraki",
		},
		{
			name:      "blank name",
			primary:   &fakeSource{name: "meraki", catalog: []string{"Ahri", "Vi", "Zed"}},
			secondary: &fakeSource{name: "ddragon", catalog: []string{"Ahri", "Vi", "Zed"}},
			input:     "  ",
			wantOK:    false,
		},
		{
			name:      "no catalogs",
			primary:   &fakeSource{name: "meraki"},
			secondary: &fakeSource{name: "ddragon"},
			input:     "Ahri",
			wantOK:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rc := NewReconciler(tc.primary, tc.secondary, zap.NewNop())
			choice, ok := rc.Reconcile(context.Background(), tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			assert.Equal(t, tc.wantName, choice.Name)
			assert.Equal(t, tc.wantSource, choice.Source.Name())
			assert.NotEqual(t, choice.Source.Name(), choice.Fallback.Name())
		})
	}
}
