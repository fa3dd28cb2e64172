package identity

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"foodndeliv/delivery-svc/internal/domain"
	"foodndeliv/delivery-svc/internal/service"
)

var _ service.AccountBridge = (*Bridge)(nil)

// Bridge mirrors local customers and riders into a Provider. Failures never reach the caller;
// they are logged and the local operation stands. A Bridge with a nil Provider does nothing.
type Bridge struct {
	provider     Provider
	tempPassword string
	logger       *zap.Logger
}

func NewBridge(provider Provider, tempPassword string, logger *zap.Logger) *Bridge {
	return &Bridge{provider: provider, tempPassword: tempPassword, logger: logger}
}

func (b *Bridge) Enabled() bool {
	return b != nil && b.provider != nil
}

func (b *Bridge) ProvisionCustomer(ctx context.Context, customer domain.Customer) {
	if !b.Enabled() {
		return
	}
	first, last := SplitName(customer.Name, "Customer")
	b.provision(ctx, Account{
		Username:   CustomerUsername(customer.Name),
		Email:      customer.Email,
		FirstName:  first,
		LastName:   last,
		Attributes: map[string]string{AttrCustomerID: strconv.FormatInt(customer.ID, 10)},
	}, RoleCustomer)
}

func (b *Bridge) ProvisionRider(ctx context.Context, rider domain.Rider) {
	if !b.Enabled() {
		return
	}
	first, last := SplitName(rider.Name, "Rider")
	b.provision(ctx, Account{
		Username:   RiderUsername(rider.Name, rider.ID),
		FirstName:  first,
		LastName:   last,
		Attributes: map[string]string{AttrRiderID: strconv.FormatInt(rider.ID, 10)},
	}, RoleRider)
}

func (b *Bridge) RemoveCustomer(ctx context.Context, customer domain.Customer) {
	if !b.Enabled() {
		return
	}
	b.remove(ctx, AttrCustomerID, strconv.FormatInt(customer.ID, 10), CustomerUsername(customer.Name))
}

func (b *Bridge) RemoveRider(ctx context.Context, rider domain.Rider) {
	if !b.Enabled() {
		return
	}
	b.remove(ctx, AttrRiderID, strconv.FormatInt(rider.ID, 10), RiderUsername(rider.Name, rider.ID))
}

func (b *Bridge) provision(ctx context.Context, account Account, role string) {
	log := b.logger.With(zap.String("username", account.Username), zap.String("role", role))

	account.Password = b.tempPassword
	if account.Password == "" {
		pw, err := GeneratePassword()
		if err != nil {
			log.Error("failed to generate temporary password", zap.Error(err))
			return
		}
		account.Password = pw
	}

	userID, err := b.provider.CreateAccount(ctx, account)
	if err != nil {
		log.Error("failed to create identity account", zap.Error(err))
		return
	}
	log.Info("identity account created", zap.String("user_id", userID))

	if err := b.provider.AssignRole(ctx, userID, role); err != nil {
		log.Error("failed to assign role", zap.String("user_id", userID), zap.Error(err))
		return
	}
	log.Info("role assigned", zap.String("user_id", userID))
}

// remove deletes every account carrying the attribute, or failing that every account with the
// exact username.
func (b *Bridge) remove(ctx context.Context, attr, value, username string) {
	log := b.logger.With(zap.String(attr, value), zap.String("username", username))

	ids, err := b.provider.FindByAttribute(ctx, attr, value)
	if err != nil {
		log.Warn("identity search by attribute failed", zap.Error(err))
	}
	if len(ids) == 0 {
		ids, err = b.provider.FindByUsername(ctx, username)
		if err != nil {
			log.Error("identity search by username failed", zap.Error(err))
			return
		}
	}
	if len(ids) == 0 {
		log.Warn("no identity account found to remove")
		return
	}

	for _, id := range ids {
		if err := b.provider.DeleteAccount(ctx, id); err != nil {
			log.Error("failed to delete identity account", zap.String("user_id", id), zap.Error(err))
			continue
		}
		log.Info("identity account deleted", zap.String("user_id", id))
	}
}
