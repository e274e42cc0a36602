package expr

import "github.com/google/uuid"

// AttrID is an attribute's semantic identity: stamped once when a column
// is first resolved (by the Catalog, or by an Alias), and carried
// unchanged through every later rewrite. Two AttributeRefs sharing an
// AttrID denote the same logical column regardless of name.
type AttrID string

// NewAttrID mints a fresh, globally unique attribute id. google/uuid's
// generator is safe for concurrent use, satisfying the requirement that
// id generation be atomic across threads without a package-level lock.
func NewAttrID() AttrID {
	return AttrID(uuid.NewString())
}

// AttributeSet is an unordered set of attribute ids, used for the
// references() query on expressions and plan nodes.
type AttributeSet map[AttrID]struct{}

// NewAttributeSet builds a set from the given ids.
func NewAttributeSet(ids ...AttrID) AttributeSet {
	s := make(AttributeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a member of s.
func (s AttributeSet) Contains(id AttrID) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set containing every id in s or other.
func (s AttributeSet) Union(other AttributeSet) AttributeSet {
	out := make(AttributeSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// SubsetOf reports whether every id in s is also in other.
func (s AttributeSet) SubsetOf(other AttributeSet) bool {
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
