// Package domain holds the collected tables and their row types
package domain

import (
	"fmt"
	"strings"
	"time"
)

// RefType is how a post relates to the post it references
type RefType uint8

const (
	RefNone RefType = iota
	RefRetweeted
	RefQuoted
	RefRepliedTo
)

func (t RefType) String() string {
	switch t {
	case RefRetweeted:
		return "retweeted"
	case RefQuoted:
		return "quoted"
	case RefRepliedTo:
		return "replied_to"
	default:
		return ""
	}
}

// ParseRefType maps the wire referenced_tweets type onto RefType
func ParseRefType(s string) (RefType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RefNone, nil
	case "retweeted":
		return RefRetweeted, nil
	case "quoted":
		return RefQuoted, nil
	case "replied_to":
		return RefRepliedTo, nil
	}
	return RefNone, fmt.Errorf("unknown reference type %q", s)
}

// Post is one row of the posts table
type Post struct {
	ID                string
	AuthorID          string
	Text              string
	Lang              string
	CreatedAt         time.Time
	PossiblySensitive bool
	RefType           RefType
	RefID             string
	GeoPlaceID        string
}

// Ref attaches a reference to p. An unknown type or empty id leaves p
// unreferenced so RefID is set exactly when RefType is not RefNone.
func (p Post) Ref(kind, id string) Post {
	t, err := ParseRefType(kind)
	id = strings.TrimSpace(id)
	if err != nil || t == RefNone || id == "" {
		p.RefType, p.RefID = RefNone, ""
		return p
	}
	p.RefType, p.RefID = t, id
	return p
}

// Referenced reports whether p points at another post
func (p Post) Referenced() bool { return p.RefType != RefNone }

// Author is one row of the users table
type Author struct {
	ID       string
	Name     string
	Username string
	Location string
}

// Place is one row of the places table
type Place struct {
	ID       string
	Country  string
	FullName string
	Name     string
}

// Tables accumulates rows across pages. Places stays nil until a page
// carries a places expansion.
type Tables struct {
	Posts   []Post
	Authors []Author
	Places  []Place
}

// HasPlaces reports whether any page contributed a places table
func (t Tables) HasPlaces() bool { return t.Places != nil }

// CleanPost is a post with its normalized tokens and translation
type CleanPost struct {
	Post
	Clean      []string
	Translated string
}
