package api

import (
	"context"
	"net/url"
	"strconv"
)

// The server routes the record collection with a trailing slash.
const recordsPath = "/api/records/"

// values encodes the non-zero filters as query parameters. Server-side
// filter semantics (case-insensitive substring match) are the server's
// contract, mirrored client-side by the filter package.
func (q *RecordQuery) values() url.Values {
	if q == nil {
		return nil
	}
	v := url.Values{}
	if q.BeanID != 0 {
		v.Set("bean_id", strconv.Itoa(q.BeanID))
	}
	if q.Machine != "" {
		v.Set("machine", q.Machine)
	}
	if q.Grinder != "" {
		v.Set("grinder", q.Grinder)
	}
	if q.BeanVariety != "" {
		v.Set("bean_variety", q.BeanVariety)
	}
	if q.BeanRoaster != "" {
		v.Set("bean_roaster", q.BeanRoaster)
	}
	return v
}

// ListRecords fetches espresso records, optionally filtered server-side.
// A nil query fetches the full history, in server return order.
func (c *Client) ListRecords(ctx context.Context, query *RecordQuery) ([]EspressoRecord, error) {
	var records []EspressoRecord
	if err := c.get(ctx, recordsPath, query.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetRecord fetches a single record by id.
func (c *Client) GetRecord(ctx context.Context, id int) (*EspressoRecord, error) {
	var record EspressoRecord
	if err := c.get(ctx, idPath(recordsPath, id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateRecord logs a new espresso extraction.
func (c *Client) CreateRecord(ctx context.Context, req RecordCreate) (*EspressoRecord, error) {
	var record EspressoRecord
	if err := c.post(ctx, recordsPath, req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateRecord applies a partial update to a record. Only fields present in
// the payload change; the bean association cannot be changed.
func (c *Client) UpdateRecord(ctx context.Context, id int, req RecordUpdate) (*EspressoRecord, error) {
	var record EspressoRecord
	if err := c.put(ctx, idPath(recordsPath, id), req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteRecord deletes a record by id.
func (c *Client) DeleteRecord(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(recordsPath, id))
}
