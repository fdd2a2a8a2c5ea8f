package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// GuestPrefix marks participant ids that refer to guests instead of members.
// A guest id is the prefix followed by the guest's trimmed name, e.g. "EXT:Sam".
const GuestPrefix = "EXT:"

// ParticipantID identifies a participant in a custom split: either a member
// (by numeric id) or a guest (by name). Guests with the same trimmed name are
// the same participant.
type ParticipantID struct {
	memberID int64
	guest    string
	isGuest  bool
}

// MemberRef returns a ParticipantID referring to a member.
func MemberRef(id int64) ParticipantID {
	return ParticipantID{memberID: id}
}

// GuestRef returns a ParticipantID referring to a guest by name.
func GuestRef(name string) ParticipantID {
	return ParticipantID{guest: strings.TrimSpace(name), isGuest: true}
}

// ParseParticipantID decodes the wire format: "EXT:<name>" for guests,
// a base-10 integer for members.
func ParseParticipantID(s string) (ParticipantID, error) {
	if strings.HasPrefix(s, GuestPrefix) {
		return GuestRef(strings.TrimPrefix(s, GuestPrefix)), nil
	}
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return ParticipantID{}, fmt.Errorf("invalid participant id %q", s)
	}
	return MemberRef(id), nil
}

// IsGuest reports whether the id refers to a guest.
func (p ParticipantID) IsGuest() bool {
	return p.isGuest
}

// MemberID returns the member id; ok is false for guests.
func (p ParticipantID) MemberID() (id int64, ok bool) {
	if p.isGuest {
		return 0, false
	}
	return p.memberID, true
}

// GuestName returns the guest's trimmed name; ok is false for members.
func (p ParticipantID) GuestName() (name string, ok bool) {
	if !p.isGuest {
		return "", false
	}
	return p.guest, true
}

// String returns the wire format of the id.
func (p ParticipantID) String() string {
	if p.isGuest {
		return GuestPrefix + p.guest
	}
	return strconv.FormatInt(p.memberID, 10)
}

// MarshalJSON encodes the id in its wire format.
func (p ParticipantID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON decodes the id from its wire format.
func (p *ParticipantID) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("participant id must be a string: %w", err)
	}
	parsed, err := ParseParticipantID(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
