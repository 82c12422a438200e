package cron

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"
	"github.com/phpdave11/gofpdf"

	"concierge/config"
	"concierge/database/repository/inventory"
)

const TypeLedgerExport = "export:ledger"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisExportQueueDB,
	}
}

// Enqueuer pushes ledger-export tasks onto the queue. It satisfies
// reception.LedgerExporter.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer() *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(redisOpts())}
}

func (e *Enqueuer) EnqueueExport(ctx context.Context) error {
	task := asynq.NewTask(TypeLedgerExport, nil)
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue ledger export: %w", err)
	}
	return nil
}

// InitExportWorker runs the async worker in background. Each task writes a
// fresh PDF snapshot of the booking ledger to the exports directory.
func InitExportWorker(repo inventory.Repository, exportsDir string) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeLedgerExport, handleLedgerExport(repo, exportsDir))

	go func() {
		log.Println("[ExportWorker] Starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ExportWorker] Failed to start worker: %v", err)
		}
	}()
}

func handleLedgerExport(repo inventory.Repository, exportsDir string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		path, err := WriteLedgerPDF(ctx, repo, exportsDir)
		if err != nil {
			log.Printf("[ExportWorker] Ledger export failed: %v", err)
			return err
		}
		log.Printf("[ExportWorker] Ledger exported to %s", path)
		return nil
	}
}

// WriteLedgerPDF renders the full booking ledger plus per-type occupancy into
// a timestamped PDF under exportsDir and returns the file path.
func WriteLedgerPDF(ctx context.Context, repo inventory.Repository, exportsDir string) (string, error) {
	if err := os.MkdirAll(exportsDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating exports dir: %w", err)
	}

	bookings, err := repo.AllBookings(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading bookings: %w", err)
	}
	roomTypes, err := repo.GetAllRoomTypes(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading room types: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Ledger")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Room types")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, rt := range roomTypes {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d/%d available, %.2f-%.2f per night",
			rt.RoomType, rt.AvailableRooms, rt.TotalRooms, rt.MinPrice, rt.MaxPrice))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Bookings")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, b := range bookings {
		line := fmt.Sprintf("Room %d | %s | %s to %s | %.2f", b.RoomID, b.GuestName, b.CheckIn, b.CheckOut, b.FinalPrice)
		if b.Occasion != "" {
			line += " | " + b.Occasion
		}
		pdf.MultiCell(0, 7, line, "", "L", false)
	}

	path := filepath.Join(exportsDir, fmt.Sprintf("ledger_%s.pdf", time.Now().Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("error writing ledger PDF: %w", err)
	}
	return path, nil
}
