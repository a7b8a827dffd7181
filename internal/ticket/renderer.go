package ticket

import (
	"bytes"
	"fmt"

	"museum-ticketing/internal/model"
)

// Artifact 可寄送/可列印的票券產物
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Renderer 票券產生是外部協作者的職責；這裡只定義邊界。
// 產出是已提交訂票的純函數，失敗不影響訂票本身，之後可重出。
type Renderer interface {
	Render(booking *model.Booking) (*Artifact, error)
}

// TextRenderer 內建的純文字票券，外部 PDF 產生器不可用時的替代輸出
type TextRenderer struct{}

func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(booking *model.Booking) (*Artifact, error) {
	if booking == nil || booking.BookingID == "" {
		return nil, fmt.Errorf("render ticket: booking is not committed")
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "==============================================")
	fmt.Fprintln(&buf, "            PIXELPAST MUSEUM TICKET")
	fmt.Fprintln(&buf, "==============================================")
	fmt.Fprintf(&buf, "Booking ID:     %s\n", booking.BookingID)
	fmt.Fprintf(&buf, "Museum:         %s\n", booking.MuseumName)
	fmt.Fprintf(&buf, "Visit Date:     %s\n", booking.TourDate)
	fmt.Fprintf(&buf, "Tickets:        %d\n", booking.Tickets)
	fmt.Fprintf(&buf, "Payment:        %s (%s)\n", booking.PaymentMethod, booking.PaymentStatus)
	fmt.Fprintln(&buf, "----------------------------------------------")
	fmt.Fprintln(&buf, "Please show this ticket at the entrance.")
	fmt.Fprintln(&buf, "==============================================")

	return &Artifact{
		Filename:    "Museum_Ticket.txt",
		ContentType: "text/plain",
		Data:        buf.Bytes(),
	}, nil
}
