package conops

// ConopsCreated is recorded when a new dossier enters the catalog.
type ConopsCreated struct {
	ID   int
	Name string
}

func (ConopsCreated) EventName() string { return "ConopsCreated" }

// ConopsEnabled is recorded when a dossier is activated.
type ConopsEnabled struct {
	ID int
}

func (ConopsEnabled) EventName() string { return "ConopsEnabled" }

// ConopsDisabled is recorded when a dossier is suspended.
type ConopsDisabled struct {
	ID int
}

func (ConopsDisabled) EventName() string { return "ConopsDisabled" }
