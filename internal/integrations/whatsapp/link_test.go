package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "919876543210", DigitsOnly("+91 98765-43210"))
	assert.Equal(t, "4915112345678", DigitsOnly("(49) 151 1234 5678"))
	assert.Equal(t, "", DigitsOnly("no digits here"))
}

func TestBuildLink(t *testing.T) {
	link := BuildLink("+91 98765-43210", "Request received & queued")

	assert.Equal(t, "https://wa.me/919876543210?text=Request+received+%26+queued", link)
}
