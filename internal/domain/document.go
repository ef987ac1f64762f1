package domain

// Document is the single aggregate unit of persistence. The document store
// exclusively owns the on-disk representation; every other component works on
// an in-memory copy obtained from a load and discarded after a save.
type Document struct {
	Admin   Admin      `json:"admin"`
	Users   []User     `json:"users"`
	Tools   []Tool     `json:"tools"`
	Rentals []Rental   `json:"rentals"`
	Logs    []LogEntry `json:"logs"`
	Version int        `json:"version"`
}

// NewDocument returns an empty-but-valid document seeded with the admin record.
func NewDocument(admin Admin) *Document {
	return &Document{
		Admin:   admin,
		Users:   []User{},
		Tools:   []Tool{},
		Rentals: []Rental{},
		Logs:    []LogEntry{},
	}
}

func (d *Document) FindTool(id string) *Tool {
	for i := range d.Tools {
		if d.Tools[i].ID == id {
			return &d.Tools[i]
		}
	}
	return nil
}

func (d *Document) FindRental(id string) *Rental {
	for i := range d.Rentals {
		if d.Rentals[i].ID == id {
			return &d.Rentals[i]
		}
	}
	return nil
}

func (d *Document) FindLog(id int) *LogEntry {
	for i := range d.Logs {
		if d.Logs[i].ID == id {
			return &d.Logs[i]
		}
	}
	return nil
}

func (d *Document) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) FindUserByID(id int) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// NextUserID returns the next monotonic user ID.
func (d *Document) NextUserID() int {
	max := 0
	for i := range d.Users {
		if d.Users[i].ID > max {
			max = d.Users[i].ID
		}
	}
	return max + 1
}

// NextLogID returns the next monotonic log entry ID.
func (d *Document) NextLogID() int {
	max := 0
	for i := range d.Logs {
		if d.Logs[i].ID > max {
			max = d.Logs[i].ID
		}
	}
	return max + 1
}
