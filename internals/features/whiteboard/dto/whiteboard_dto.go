package dto

import (
	"time"

	whiteboardModel "pteguide_backend/internals/features/whiteboard/model"
)

type SaveRequest struct {
	Title     string `json:"title" form:"title"`
	ImageData string `json:"image_data" form:"image_data"`
}

// WhiteboardResponse is the gallery shape; the creator collapses to a display
// name ("" for anonymous saves).
type WhiteboardResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	ImageData     string    `json:"image_data"`
	ThumbnailData string    `json:"thumbnail_data"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToWhiteboardResponse(m *whiteboardModel.WhiteboardImageModel) WhiteboardResponse {
	resp := WhiteboardResponse{
		ID:            m.ID,
		Title:         m.Title,
		ImageData:     m.ImageData,
		ThumbnailData: m.ThumbnailData,
		CreatedAt:     m.CreatedAt,
	}
	if m.CreatedBy != nil {
		resp.CreatedBy = m.CreatedBy.Name
	}
	return resp
}

func ToWhiteboardResponses(rows []whiteboardModel.WhiteboardImageModel) []WhiteboardResponse {
	out := make([]WhiteboardResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToWhiteboardResponse(&rows[i]))
	}
	return out
}
