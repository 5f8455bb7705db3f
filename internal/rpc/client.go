package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/darkseear/tinylink/internal/models"
	pb "github.com/darkseear/tinylink/internal/proto"
)

// Client - клиент tinylink.Links, работающий с типами реестра.
type Client struct {
	conn  *grpc.ClientConn
	links pb.LinksClient
}

// Dial подключается к target без TLS.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, links: pb.NewLinksClient(conn)}, nil
}

// Create регистрирует url, под кодом code, если он задан.
func (c *Client) Create(ctx context.Context, url, code string) (models.LinkView, error) {
	resp, err := c.links.Create(ctx, &pb.CreateRequest{Url: url, Code: code})
	if err != nil {
		return models.LinkView{}, err
	}
	return fromProto(resp.GetLink()), nil
}

// Get возвращает активную ссылку с кодом code.
func (c *Client) Get(ctx context.Context, code string) (models.LinkView, error) {
	resp, err := c.links.Get(ctx, &pb.CodeRequest{Code: code})
	if err != nil {
		return models.LinkView{}, err
	}
	return fromProto(resp.GetLink()), nil
}

// List возвращает активные ссылки.
func (c *Client) List(ctx context.Context) ([]models.LinkView, error) {
	resp, err := c.links.List(ctx, &pb.ListRequest{})
	if err != nil {
		return nil, err
	}
	links := make([]models.LinkView, 0, len(resp.GetLinks()))
	for _, l := range resp.GetLinks() {
		links = append(links, fromProto(l))
	}
	return links, nil
}

// Delete помечает ссылку с кодом code удалённой.
func (c *Client) Delete(ctx context.Context, code string) error {
	_, err := c.links.Delete(ctx, &pb.CodeRequest{Code: code})
	return err
}

// Close закрывает соединение.
func (c *Client) Close() error {
	return c.conn.Close()
}
