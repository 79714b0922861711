package connect

import (
	"context"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/osa030/tilawah/internal/app/reader"
	readerv1 "github.com/osa030/tilawah/internal/gen/tilawah/reader/v1"
	"github.com/osa030/tilawah/internal/gen/tilawah/reader/v1/readerv1connect"
	"github.com/osa030/tilawah/internal/infra/config"
)

// AdminService implements the AdminService RPC.
type AdminService struct {
	reader *reader.Manager
	config *config.Config
}

// NewAdminService creates a new AdminService.
func NewAdminService(reader *reader.Manager, cfg *config.Config) *AdminService {
	return &AdminService{
		reader: reader,
		config: cfg,
	}
}

// Ensure AdminService implements the interface.
var _ readerv1connect.AdminServiceHandler = (*AdminService)(nil)

// GetStatus returns the current reader status.
func (s *AdminService) GetStatus(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
) (*connect.Response[readerv1.StatusResponse], error) {
	return connect.NewResponse(toStatusResponse(s.reader.GetStatus())), nil
}

// ResetPlayback stops playback and clears the parked verse.
func (s *AdminService) ResetPlayback(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
) (*connect.Response[readerv1.ResetPlaybackResponse], error) {
	s.reader.Reset()

	return connect.NewResponse(&readerv1.ResetPlaybackResponse{
		Success: true,
		Message: "Playback reset",
	}), nil
}
