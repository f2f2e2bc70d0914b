package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

// Mensajes del libro de movimientos.
const (
	MsgEntryRegistered   = "Entrada registrada exitosamente"
	MsgExitRegistered    = "Salida registrada exitosamente"
	MsgProductRequired   = "Debe seleccionar un producto"
	MsgProductMissing    = "El producto seleccionado no existe"
	MsgInvalidType       = "Tipo de movimiento inválido"
	MsgInvalidQuantity   = "La cantidad debe ser un número positivo"
	MsgReasonRequired    = "Debe especificar una razón"
	MsgCanMoveOK         = "OK"
	msgInsufficientStock = "Stock insuficiente. Disponible: %d unidades"
	msgLowStockAlert     = "Alerta: %s ahora tiene stock bajo (%d unidades)"
)

// MovementUseCase libro de movimientos: única vía para cambiar el stock de un producto.
// Cada registro corre dentro de TxRunner.Run; si algo falla no queda ni el movimiento
// ni el cambio de stock.
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	notifier    LowStockNotifier
	clock       func() time.Time
}

// NewMovementUseCase construye el caso de uso. notifier puede ser nil.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	notifier LowStockNotifier,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
		notifier:    notifier,
		clock:       time.Now,
	}
}

// signedDelta convierte la magnitud pedida en el cambio de stock según el tipo.
func signedDelta(movType string, quantity int) int {
	if movType == entity.MovementTypeSalida {
		return -quantity
	}
	return quantity
}

// exceedsStock es la regla de suficiencia que comparten Validate, Register y CanPerform.
func exceedsStock(product *entity.Product, movType string, quantity int) bool {
	return product.Stock+signedDelta(movType, quantity) < 0
}

func insufficientStockMessage(product *entity.Product) string {
	return fmt.Sprintf(msgInsufficientStock, product.Stock)
}

// Validate revisa el pedido contra el estado actual y devuelve todas las violaciones.
func (uc *MovementUseCase) Validate(ctx context.Context, in dto.RegisterMovementRequest) (dto.ValidationResult, error) {
	errs, _, err := uc.validate(ctx, uc.productRepo, in)
	if err != nil {
		return dto.ValidationResult{}, err
	}
	return dto.ValidationResult{Valid: len(errs) == 0, Errors: errs}, nil
}

func (uc *MovementUseCase) validate(ctx context.Context, products repository.ProductRepository, in dto.RegisterMovementRequest) (errs []string, insufficient bool, err error) {
	errs = make([]string, 0)
	var product *entity.Product
	if strings.TrimSpace(in.ProductID) == "" {
		errs = append(errs, MsgProductRequired)
	} else {
		product, err = products.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, false, err
		}
		if product == nil {
			errs = append(errs, MsgProductMissing)
		}
	}
	if !entity.IsValidMovementType(in.Type) {
		errs = append(errs, MsgInvalidType)
	}
	quantityOK := in.Quantity != nil && *in.Quantity > 0
	if !quantityOK {
		errs = append(errs, MsgInvalidQuantity)
	}
	if strings.TrimSpace(in.Reason) == "" {
		errs = append(errs, MsgReasonRequired)
	}
	if in.Type == entity.MovementTypeSalida && product != nil && quantityOK && exceedsStock(product, in.Type, *in.Quantity) {
		errs = append(errs, insufficientStockMessage(product))
		insufficient = true
	}
	return errs, insufficient, nil
}

// Register valida, vuelve a leer el producto dentro de la transacción, agrega el movimiento
// y aplica el delta de stock. Una salida que deja el stock en o bajo el mínimo dispara el
// aviso de stock bajo.
func (uc *MovementUseCase) Register(ctx context.Context, actor entity.Actor, in dto.RegisterMovementRequest) (*dto.MovementResult, error) {
	var (
		movement *entity.Movement
		updated  *entity.Product
	)
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		errs, insufficient, err := uc.validate(ctx, productRepo, in)
		if err != nil {
			return err
		}
		if len(errs) > 0 {
			return &domain.ValidationError{Errors: errs, InsufficientStock: insufficient}
		}

		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewError(domain.ErrNotFound, domain.MsgProductNotFound)
		}
		if exceedsStock(product, in.Type, *in.Quantity) {
			return domain.NewError(domain.ErrNegativeStock, domain.MsgNegativeStock)
		}

		delta := signedDelta(in.Type, *in.Quantity)
		movement, err = entity.NewMovement(
			uuid.New().String(), product, in.Type, delta,
			strings.TrimSpace(in.Reason), strings.TrimSpace(in.Notes), actor, uc.clock(),
		)
		if err != nil {
			return &domain.ValidationError{Errors: []string{err.Error()}}
		}
		if err := movRepo.Append(ctx, movement); err != nil {
			return err
		}
		updated, err = productRepo.UpdateStock(ctx, product.ID, delta)
		if errors.Is(err, domain.ErrNegativeStock) {
			return domain.NewError(domain.ErrNegativeStock, domain.MsgNegativeStock)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			log.Error().Err(err).Str("product_id", in.ProductID).Str("type", in.Type).Msg("registrar movimiento")
		}
		return nil, err
	}

	log.Info().
		Str("movement_id", movement.ID).
		Str("product_id", movement.ProductID).
		Str("type", movement.Type).
		Int("quantity", movement.Quantity).
		Int("new_stock", movement.NewStock).
		Str("user", movement.UserName).
		Msg("movimiento registrado")

	res := &dto.MovementResult{Success: true, Message: MsgExitRegistered}
	if movement.Type == entity.MovementTypeEntrada {
		res.Message = MsgEntryRegistered
	}
	out := dto.FromMovement(movement)
	res.Movement = &out

	if movement.Type == entity.MovementTypeSalida && updated != nil && movement.NewStock <= updated.MinStock {
		res.LowStock = true
		res.Alert = fmt.Sprintf(msgLowStockAlert, updated.Name, movement.NewStock)
		if uc.notifier != nil {
			uc.notifier.NotifyLowStock(ctx, updated, movement.NewStock)
		}
	}
	return res, nil
}

// RegisterEntry registra una entrada sin importar el tipo recibido.
func (uc *MovementUseCase) RegisterEntry(ctx context.Context, actor entity.Actor, in dto.RegisterMovementRequest) (*dto.MovementResult, error) {
	in.Type = entity.MovementTypeEntrada
	return uc.Register(ctx, actor, in)
}

// RegisterExit registra una salida sin importar el tipo recibido.
func (uc *MovementUseCase) RegisterExit(ctx context.Context, actor entity.Actor, in dto.RegisterMovementRequest) (*dto.MovementResult, error) {
	in.Type = entity.MovementTypeSalida
	return uc.Register(ctx, actor, in)
}

// AppendInitialStock agrega al libro de la transacción en curso la entrada "Stock inicial"
// de 0 al stock guardado del producto. No toca el stock. Sin stock devuelve (nil, nil).
func (uc *MovementUseCase) AppendInitialStock(ctx context.Context, movRepo repository.MovementRepository, actor entity.Actor, product *entity.Product) (*entity.Movement, error) {
	if product.Stock <= 0 {
		return nil, nil
	}
	before := *product
	before.Stock = 0
	movement, err := entity.NewMovement(
		uuid.New().String(), &before, entity.MovementTypeEntrada, product.Stock,
		entity.ReasonInitialStock, "", actor, uc.clock(),
	)
	if err != nil {
		return nil, err
	}
	if err := movRepo.Append(ctx, movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// RegisterInitialStock deja constancia del stock inicial de un producto ya guardado, en su
// propia transacción. Si el producto no tiene stock o ya tiene historial devuelve (nil, nil).
func (uc *MovementUseCase) RegisterInitialStock(ctx context.Context, actor entity.Actor, product *entity.Product) (*entity.Movement, error) {
	var movement *entity.Movement
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		current, err := productRepo.GetByID(ctx, product.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NewError(domain.ErrNotFound, domain.MsgProductNotFound)
		}
		history, err := movRepo.ListByProduct(ctx, current.ID)
		if err != nil {
			return err
		}
		if len(history) > 0 {
			return nil
		}
		movement, err = uc.AppendInitialStock(ctx, movRepo, actor, current)
		return err
	})
	if err != nil {
		return nil, err
	}
	if movement != nil {
		log.Info().Str("product_id", movement.ProductID).Int("stock", movement.NewStock).Msg("stock inicial registrado")
	}
	return movement, nil
}

// CanPerform chequeo previo sin efectos. Aplica la misma regla de stock que Register.
func (uc *MovementUseCase) CanPerform(ctx context.Context, productID, movType string, quantity int) (dto.CanPerformResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return dto.CanPerformResponse{}, err
	}
	switch {
	case product == nil:
		return dto.CanPerformResponse{CanMove: false, Message: domain.MsgProductNotFound}, nil
	case !entity.IsValidMovementType(movType):
		return dto.CanPerformResponse{CanMove: false, Message: MsgInvalidType}, nil
	case quantity <= 0:
		return dto.CanPerformResponse{CanMove: false, Message: MsgInvalidQuantity}, nil
	case exceedsStock(product, movType, quantity):
		return dto.CanPerformResponse{CanMove: false, Message: insufficientStockMessage(product)}, nil
	}
	return dto.CanPerformResponse{CanMove: true, Message: MsgCanMoveOK}, nil
}
