// Package pdf renders printable documents for the shop: installment
// receipts handed to customers and sales reports for the owner.
package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/utils"
)

const shopName = "Cellkom.Store"

type receiptService struct {
	ledgerSvc    portssvc.LedgerReaderSvc
	reportingSvc portssvc.ReportingSvcFacade
}

// NewReceiptService creates the PDF renderer backed by the ledger and
// reporting services.
func NewReceiptService(ledgerSvc portssvc.LedgerReaderSvc, reportingSvc portssvc.ReportingSvcFacade) portssvc.ReceiptSvcFacade {
	return &receiptService{ledgerSvc: ledgerSvc, reportingSvc: reportingSvc}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()
	return maroto.New(cfg)
}

func (s *receiptService) RenderLedgerReceipt(ctx context.Context, entryID string) ([]byte, error) {
	entry, err := s.ledgerSvc.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	m := newDocument()

	m.AddRow(20,
		text.NewCol(6, shopName, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(6, "Bukti Pembayaran Cicilan", props.Text{
			Size:  12,
			Align: align.Right,
			Top:   4,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New("No. Transaksi: "+entry.EntryID, props.Text{Top: 0, Size: 9}),
			text.New("Jenis: "+string(entry.Kind), props.Text{Top: 5, Size: 9}),
			text.New("Pelanggan: "+entry.CustomerName, props.Text{Top: 10, Size: 9}),
			text.New("Tanggal: "+entry.TransactionDate.Format("02 Jan 2006"), props.Text{Top: 15, Size: 9}),
		),
		col.New(6).Add(
			text.New("Total: "+utils.FormatRupiah(entry.TotalAmount), props.Text{Top: 0, Size: 9}),
			text.New("Dibayar: "+utils.FormatRupiah(entry.PaidAmount), props.Text{Top: 5, Size: 9}),
			text.New("Sisa: "+utils.FormatRupiah(entry.RemainingAmount), props.Text{Top: 10, Size: 9, Style: fontstyle.Bold}),
			text.New("Status: "+string(entry.Status), props.Text{Top: 15, Size: 9}),
		),
	)

	if entry.Details != "" {
		m.AddRow(10,
			text.NewCol(12, entry.Details, props.Text{Size: 8}),
		)
	}

	m.AddRow(10,
		text.NewCol(6, "Riwayat Pembayaran", props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
	)
	m.AddRow(8,
		text.NewCol(4, "Tanggal", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Jumlah", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(4, "Diterima oleh", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, payment := range entry.Payments {
		m.AddRow(8,
			text.NewCol(4, payment.PaidAt.Format("02 Jan 2006 15:04"), props.Text{Size: 9}),
			text.NewCol(4, utils.FormatRupiah(payment.Amount), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(4, payment.ReceivedBy, props.Text{Size: 9, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to render receipt for ledger entry %s: %w", entryID, err)
	}
	return doc.GetBytes(), nil
}

func (s *receiptService) RenderSalesReport(ctx context.Context, from time.Time, to time.Time) ([]byte, error) {
	summary, err := s.reportingSvc.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	m := newDocument()

	m.AddRow(20,
		text.NewCol(6, shopName, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(6, "Laporan Penjualan", props.Text{
			Size:  12,
			Align: align.Right,
			Top:   4,
		}),
	)

	m.AddRow(10,
		text.NewCol(12, fmt.Sprintf("Periode %s s/d %s", from.Format("02 Jan 2006"), to.Format("02 Jan 2006")), props.Text{Size: 9}),
	)

	m.AddRow(8,
		text.NewCol(3, "Tanggal", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Transaksi", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Omzet", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Diterima", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, row := range summary.Rows {
		m.AddRow(8,
			text.NewCol(3, row.Date, props.Text{Size: 9}),
			text.NewCol(3, fmt.Sprintf("%d", row.SaleCount), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, utils.FormatRupiah(row.GrossTotal), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, utils.FormatRupiah(row.PaidTotal), props.Text{Size: 9, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to render sales report: %w", err)
	}
	return doc.GetBytes(), nil
}
