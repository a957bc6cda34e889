package querycache

import (
	"fmt"
	"slices"
)

// Tag names a family of cached reads that a mutation can invalidate.
type Tag string

const (
	TagUsers          Tag = "Users"
	TagCurrentUser    Tag = "Login User"
	TagAgents         Tag = "Agents"
	TagProviders      Tag = "Providers"
	TagTickets        Tag = "Tickets"
	TagLedgers        Tag = "Ledgers"
	TagPayments       Tag = "Payments"
	TagPaymentMethods Tag = "PaymentMethods"
)

var AllTags = []Tag{
	TagUsers, TagCurrentUser, TagAgents, TagProviders,
	TagTickets, TagLedgers, TagPayments, TagPaymentMethods,
}

func (t Tag) IsValid() bool {
	return slices.Contains(AllTags, t)
}

// ParseTags converts wire names back into tags, rejecting unknown names.
func ParseTags(names []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		tag := Tag(name)
		if !tag.IsValid() {
			return nil, fmt.Errorf("unknown cache tag %q", name)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Strings is the inverse of ParseTags.
func Strings(tags []Tag) []string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = string(tag)
	}
	return names
}
