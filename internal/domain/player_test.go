package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/rosterwatch/internal/domain"
)

func TestPlayerEqual(t *testing.T) {
	t.Parallel()

	base := func() *domain.Player {
		return &domain.Player{
			PlayerID:         "12345",
			Name:             "A. Guard",
			Position:         domain.StrPtr("PG"),
			Status:           domain.StrPtr(domain.StatusSigned),
			StarRating:       domain.IntPtr(4),
			HighSchool:       domain.StrPtr("Westside"),
			CurrentCollegeID: domain.StrPtr("vermont"),
		}
	}

	t.Run("identical players are equal", func(t *testing.T) {
		t.Parallel()
		assert.True(t, base().Equal(base()))
	})

	t.Run("surrogate row id is ignored", func(t *testing.T) {
		t.Parallel()
		a := base()
		b := base()
		b.ID = 99
		assert.True(t, a.Equal(b))
	})

	t.Run("differing scalar field", func(t *testing.T) {
		t.Parallel()
		a := base()
		b := base()
		b.Name = "B. Guard"
		assert.False(t, a.Equal(b))
	})

	t.Run("nil vs set pointer field", func(t *testing.T) {
		t.Parallel()
		a := base()
		b := base()
		b.HighSchool = nil
		assert.False(t, a.Equal(b))
	})

	t.Run("differing pointer values", func(t *testing.T) {
		t.Parallel()
		a := base()
		b := base()
		b.StarRating = domain.IntPtr(5)
		assert.False(t, a.Equal(b))
	})

	t.Run("equal pointer values at distinct addresses", func(t *testing.T) {
		t.Parallel()
		a := base()
		b := base()
		b.Position = domain.StrPtr("PG")
		assert.True(t, a.Equal(b))
	})

	t.Run("nil receivers", func(t *testing.T) {
		t.Parallel()
		var a *domain.Player
		assert.True(t, a.Equal(nil))
		assert.False(t, a.Equal(base()))
		assert.False(t, base().Equal(nil))
	})
}

func TestConferenceFullName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Big Ten", domain.ConferenceFullName("bigten"))
	assert.Equal(t, "Atlantic Coast Conference", domain.ConferenceFullName("acc"))
	// Unknown abbreviations pass through unchanged.
	assert.Equal(t, "mystery", domain.ConferenceFullName("mystery"))
}
