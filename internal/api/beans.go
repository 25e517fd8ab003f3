package api

import "context"

// The server routes the bean collection with a trailing slash.
const beansPath = "/api/beans/"

// ListBeans fetches all beans owned by the authenticated user, in server
// return order.
func (c *Client) ListBeans(ctx context.Context) ([]Bean, error) {
	var beans []Bean
	if err := c.get(ctx, beansPath, nil, &beans); err != nil {
		return nil, err
	}
	return beans, nil
}

// GetBean fetches a single bean by id.
func (c *Client) GetBean(ctx context.Context, id int) (*Bean, error) {
	var bean Bean
	if err := c.get(ctx, idPath(beansPath, id), nil, &bean); err != nil {
		return nil, err
	}
	return &bean, nil
}

// CreateBean creates a new bean.
func (c *Client) CreateBean(ctx context.Context, req BeanCreate) (*Bean, error) {
	var bean Bean
	if err := c.post(ctx, beansPath, req, &bean); err != nil {
		return nil, err
	}
	return &bean, nil
}

// UpdateBean applies a partial update to a bean. Only fields present in the
// payload change.
func (c *Client) UpdateBean(ctx context.Context, id int, req BeanUpdate) (*Bean, error) {
	var bean Bean
	if err := c.put(ctx, idPath(beansPath, id), req, &bean); err != nil {
		return nil, err
	}
	return &bean, nil
}

// DeleteBean deletes a bean by id. The server cascades the deletion to the
// bean's records; the client does not enforce this.
func (c *Client) DeleteBean(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(beansPath, id))
}
