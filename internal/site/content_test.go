package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContentDefaults(t *testing.T) {
	c := NewContent(Profile{})

	assert.Equal(t, DefaultProfile(), c.Profile)
	assert.Equal(t, []NavItem{
		{Href: "/", Label: "Home"},
		{Href: "/#about", Label: "About Me"},
		{Href: "/projects", Label: "Projects"},
	}, c.Nav)
	assert.Equal(t, "/projects", c.Projects.ButtonHref)
	assert.Equal(t, "mailto:contact@example.com", c.Contacts[0].Href)
	assert.Equal(t, "tel:+821012345678", c.Contacts[1].Href)
	assert.Empty(t, c.Contacts[2].Href)
}

func TestNewContentOverrides(t *testing.T) {
	c := NewContent(Profile{Name: "김개발", Email: "dev@kim.kr", Phone: "010 9999 0000"})

	assert.Equal(t, "김개발", c.Hero.Title)
	assert.Equal(t, "dev@kim.kr", c.Contacts[0].Value)
	assert.Equal(t, "tel:01099990000", c.Contacts[1].Href)
	assert.Equal(t, DefaultProfile().Location, c.Profile.Location)
}
