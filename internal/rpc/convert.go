package rpc

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/darkseear/tinylink/internal/models"
	pb "github.com/darkseear/tinylink/internal/proto"
)

func toProto(l models.LinkView) *pb.Link {
	link := &pb.Link{
		Code:      l.Code,
		Url:       l.URL,
		Clicks:    l.Clicks,
		CreatedAt: timestamppb.New(l.CreatedAt),
	}
	if l.LastClicked != nil {
		link.LastClicked = timestamppb.New(*l.LastClicked)
	}
	return link
}

func fromProto(l *pb.Link) models.LinkView {
	view := models.LinkView{
		Code:   l.GetCode(),
		URL:    l.GetUrl(),
		Clicks: l.GetClicks(),
	}
	if l.GetCreatedAt() != nil {
		view.CreatedAt = l.GetCreatedAt().AsTime()
	}
	if l.GetLastClicked() != nil {
		t := l.GetLastClicked().AsTime()
		view.LastClicked = &t
	}
	return view
}
