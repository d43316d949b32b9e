package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredential_Matches(t *testing.T) {
	c := Credential{Email: "a@x.com", Password: "pw"}
	assert.True(t, c.Matches("a@x.com", "pw"))
	assert.False(t, c.Matches("a@x.com", "PW"))
	assert.False(t, c.Matches("b@x.com", "pw"))
}

func TestCartItem_LineTotal(t *testing.T) {
	assert.InDelta(t, 39.98, CartItem{Name: "Shirt", Price: 19.99, Quantity: 2}.LineTotal(), 1e-9)
}
