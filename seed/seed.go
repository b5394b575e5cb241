// Package seed resets the store and loads the demo fixture set. Only for
// demo and test environments; it deletes everything first.
package seed

import (
	"fmt"
	"time"

	"rejuvenate-backend/models"
	"rejuvenate-backend/store"

	"gorm.io/gorm"
)

type fixtureIDs struct {
	customers    []uint
	services     []uint
	staff        []uint
	inventory    []uint
	appointments []uint
}

// Run clears every table and inserts 4 customers, 4 services, 4 staff,
// 4 inventory items, 4 appointments, 4 payments and matching link rows.
// Stock-moving rows go through the validated store operations so the
// inventory quantities end up consistent with the links.
func Run(db *gorm.DB) error {
	if err := clear(db); err != nil {
		return err
	}

	st := store.New(db)
	ids := fixtureIDs{}

	customers := [][3]string{
		{"Alice Johnson", "alice@gmail.com", "1234567890"},
		{"Bob Smith", "bob@gmail.com", "0987654321"},
		{"Charlie Brown", "charlie@gmail.com", "1122334455"},
		{"Diana Prince", "diana@gmail.com", "2233445566"},
	}
	for _, c := range customers {
		customer, err := st.CreateCustomer(c[0], c[1], c[2])
		if err != nil {
			return fmt.Errorf("seed customer %s: %w", c[0], err)
		}
		ids.customers = append(ids.customers, customer.ID)
	}

	services := []struct {
		name, description string
		price             float64
	}{
		{"Swedish Massage", "Relaxing full-body massage", 50.0},
		{"Facial Treatment", "Deep skin cleansing and hydration", 75.0},
		{"Hot Stone Therapy", "Therapeutic heat therapy for muscle relief", 90.0},
		{"Aromatherapy", "Essential oil-based massage for relaxation", 60.0},
	}
	for _, sv := range services {
		service, err := st.CreateService(sv.name, sv.description, sv.price)
		if err != nil {
			return fmt.Errorf("seed service %s: %w", sv.name, err)
		}
		ids.services = append(ids.services, service.ID)
	}

	staffMembers := [][2]string{
		{"Emma Davis", "Therapist"},
		{"John Doe", "Receptionist"},
		{"Sophie Turner", "Therapist"},
		{"Chris Evans", "Manager"},
	}
	for _, sm := range staffMembers {
		member, err := st.CreateStaff(sm[0], sm[1])
		if err != nil {
			return fmt.Errorf("seed staff %s: %w", sm[0], err)
		}
		ids.staff = append(ids.staff, member.ID)
	}

	inventoryItems := []struct {
		name     string
		quantity int
	}{
		{"Lavender Massage Oil", 20},
		{"Facial Cleanser", 15},
		{"Hot Stones", 10},
		{"Essential Oils Set", 25},
	}
	for _, it := range inventoryItems {
		item, err := st.AddInventoryItem(it.name, it.quantity)
		if err != nil {
			return fmt.Errorf("seed inventory %s: %w", it.name, err)
		}
		ids.inventory = append(ids.inventory, item.ID)
	}

	// Appointments spread over the coming days so they stay bookable.
	for i := 0; i < 4; i++ {
		scheduled := time.Now().AddDate(0, 0, i+1).Truncate(time.Hour)
		appointment, err := st.BookAppointment(ids.customers[i], ids.services[i], ids.staff[i], scheduled)
		if err != nil {
			return fmt.Errorf("seed appointment %d: %w", i+1, err)
		}
		ids.appointments = append(ids.appointments, appointment.ID)
	}

	amounts := []float64{50.0, 75.0, 90.0, 60.0}
	for i, amount := range amounts {
		if _, err := st.ProcessPayment(ids.customers[i], ids.appointments[i], amount); err != nil {
			return fmt.Errorf("seed payment %d: %w", i+1, err)
		}
	}

	// Each service consumes a little of its matching product.
	for i := 0; i < 4; i++ {
		if _, err := st.LinkServiceInventory(ids.services[i], ids.inventory[i], 2); err != nil {
			return fmt.Errorf("seed service link %d: %w", i+1, err)
		}
	}
	for i := 0; i < 4; i++ {
		if _, err := st.DeductInventoryUsage(ids.appointments[i], ids.inventory[i], 1); err != nil {
			return fmt.Errorf("seed appointment usage %d: %w", i+1, err)
		}
	}

	return nil
}

func clear(db *gorm.DB) error {
	tables := []interface{}{
		&models.ReminderLog{},
		&models.AppointmentInventory{},
		&models.ServiceInventory{},
		&models.Payment{},
		&models.Appointment{},
		&models.Inventory{},
		&models.Staff{},
		&models.Service{},
		&models.Customer{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
