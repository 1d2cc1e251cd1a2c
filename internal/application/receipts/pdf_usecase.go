package receipts

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pizzeria-pro/internal/domain"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

// ReceiptPDFGenerator puerto de generación del PDF del recibo.
// La implementación concreta vive en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, details []*entity.OrderDetail) ([]byte, error)
}

// PDFUseCase genera el recibo imprimible de un pedido.
type PDFUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptPDFGenerator
}

func NewPDFUseCase(orderRepo repository.OrderRepository, generator ReceiptPDFGenerator) *PDFUseCase {
	return &PDFUseCase{orderRepo: orderRepo, generator: generator}
}

// DownloadReceiptPDF recupera pedido y líneas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el pedido no existe.
func (uc *PDFUseCase) DownloadReceiptPDF(ctx context.Context, orderID int64) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	details, err := uc.orderRepo.GetDetails(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener líneas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, order, details)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recibo_pedido_%d.pdf", order.ID)
	return pdfBytes, filename, nil
}
