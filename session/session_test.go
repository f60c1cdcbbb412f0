package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateNotifiesSubscribers(t *testing.T) {
	s := NewState(nil)
	assert.Nil(t, s.Current())

	var seen []*Identity
	unsubscribe := s.Subscribe(func(id *Identity) { seen = append(seen, id) })

	user := &Identity{ID: "u1", Role: "customer"}
	s.Set(user)
	assert.Equal(t, user, s.Current())
	assert.Equal(t, []*Identity{user}, seen)

	// Sign-out notifies with nil.
	s.Set(nil)
	assert.Nil(t, s.Current())
	assert.Len(t, seen, 2)
	assert.Nil(t, seen[1])

	unsubscribe()
	s.Set(user)
	assert.Len(t, seen, 2)
}
