package servicefabric

import (
	"encoding/json"
	"fmt"
)

// PagedList is the envelope every paged Service Fabric query returns. An empty ContinuationToken
// means the last page has been read.
type PagedList[T any] struct {
	ContinuationToken string `json:"ContinuationToken,omitempty"`
	Items             []T    `json:"Items"`
}

func (p PagedList[T]) HasMore() bool {
	return p.ContinuationToken != ""
}

// UnmarshalPagedList decodes a page whose items are plain structs.
func UnmarshalPagedList[T any](data []byte) (PagedList[T], error) {
	page := PagedList[T]{}
	if err := json.Unmarshal(data, &page); err != nil {
		return PagedList[T]{}, err
	}

	return page, nil
}

// decodePagedList decodes a page whose items are members of a discriminated union.
func decodePagedList[T any](data []byte, f family[T]) (PagedList[T], error) {
	aux := struct {
		ContinuationToken string          `json:"ContinuationToken"`
		Items             json.RawMessage `json:"Items"`
	}{}

	if err := json.Unmarshal(data, &aux); err != nil {
		return PagedList[T]{}, fmt.Errorf("paged %s list: %w", f.name, err)
	}

	items, err := f.decodeList(aux.Items)
	if err != nil {
		return PagedList[T]{}, err
	}

	return PagedList[T]{ContinuationToken: aux.ContinuationToken, Items: items}, nil
}
