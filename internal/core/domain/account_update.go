package domain

// AccountUpdateKind discriminates the variants of AccountUpdate.
type AccountUpdateKind string

const (
	UpdateHolder AccountUpdateKind = "HOLDER"
	UpdateStatus AccountUpdateKind = "STATUS"
)

// AccountUpdate is a tagged variant: Holder is meaningful only for UpdateHolder,
// Status only for UpdateStatus.
type AccountUpdate struct {
	Kind   AccountUpdateKind
	Holder string
	Status AccountStatus
}

// NewHolderUpdate builds an update that renames the account holder.
func NewHolderUpdate(holder string) AccountUpdate {
	return AccountUpdate{Kind: UpdateHolder, Holder: holder}
}

// NewStatusUpdate builds an update that moves the account to the given status.
func NewStatusUpdate(status AccountStatus) AccountUpdate {
	return AccountUpdate{Kind: UpdateStatus, Status: status}
}
