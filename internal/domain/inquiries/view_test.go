package inquiries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererV1_RoundTrip(t *testing.T) {
	r := RendererV1{}

	cases := []Inquiry{
		{},
		{
			ID:      "0123456789abcdef0123456789abcdef",
			PetID:   "fedcba9876543210fedcba9876543210",
			Name:    "Testy McTesterson",
			Email:   "test@mctest.me",
			Message: "We need more tests!",
		},
	}

	for _, i := range cases {
		assert.Equal(t, i, r.FromView(r.ToView(i)))
	}
}
