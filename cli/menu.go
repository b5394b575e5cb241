// Package cli is the interactive menu over the same store operations the
// API uses. Every action prompts for its inputs, prints one confirmation or
// error line and drops back to the menu.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"rejuvenate-backend/store"
)

const timeLayout = "2006-01-02 15:04"

type Menu struct {
	store *store.Store
	in    *bufio.Scanner
	out   io.Writer
}

func New(st *store.Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{store: st, in: bufio.NewScanner(in), out: out}
}

// Run loops until the user picks Exit or input ends. Domain errors are
// printed and the loop continues; nothing here is fatal.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out, "\n======== Rejuvenate Spa Management System ========")
		fmt.Fprintln(m.out, "1. Add Customer")
		fmt.Fprintln(m.out, "2. Get Customer")
		fmt.Fprintln(m.out, "3. Add Service")
		fmt.Fprintln(m.out, "4. List Services")
		fmt.Fprintln(m.out, "5. Book Appointment")
		fmt.Fprintln(m.out, "6. Get Appointments")
		fmt.Fprintln(m.out, "7. Process Payment")
		fmt.Fprintln(m.out, "8. Add Inventory")
		fmt.Fprintln(m.out, "9. Update Inventory Stock")
		fmt.Fprintln(m.out, "10. List Customers")
		fmt.Fprintln(m.out, "11. List Staff")
		fmt.Fprintln(m.out, "12. Exit")

		choice, err := m.promptInt("Enter your choice")
		if err != nil {
			if err == io.EOF {
				return
			}
			fmt.Fprintln(m.out, "Invalid choice, please try again.")
			continue
		}

		switch choice {
		case 1:
			m.addCustomer()
		case 2:
			m.getCustomer()
		case 3:
			m.addService()
		case 4:
			m.listServices()
		case 5:
			m.bookAppointment()
		case 6:
			m.getAppointments()
		case 7:
			m.processPayment()
		case 8:
			m.addInventory()
		case 9:
			m.updateInventory()
		case 10:
			m.listCustomers()
		case 11:
			m.listStaff()
		case 12:
			fmt.Fprintln(m.out, "Exiting spa management system. Goodbye!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice, please try again.")
		}
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) promptInt(label string) (int, error) {
	text, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(text)
}

func (m *Menu) promptUint(label string) (uint, error) {
	text, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(text, 10, 32)
	return uint(v), err
}

func (m *Menu) promptFloat(label string) (float64, error) {
	text, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(text, 64)
}

func (m *Menu) fail(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

func (m *Menu) addCustomer() {
	name, err := m.prompt("Enter customer name")
	if err != nil {
		return
	}
	email, err := m.prompt("Enter customer email")
	if err != nil {
		return
	}
	phone, err := m.prompt("Enter customer phone")
	if err != nil {
		return
	}

	customer, err := m.store.CreateCustomer(name, email, phone)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Customer %s added successfully!\n", customer.Name)
}

func (m *Menu) getCustomer() {
	email, err := m.prompt("Enter customer email")
	if err != nil {
		return
	}

	customer, err := m.store.GetCustomerByEmail(email)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Customer: %s, Phone: %s\n", customer.Name, customer.Phone)
}

func (m *Menu) addService() {
	name, err := m.prompt("Enter service name")
	if err != nil {
		return
	}
	description, err := m.prompt("Enter service description")
	if err != nil {
		return
	}
	price, err := m.promptFloat("Enter service price")
	if err != nil {
		m.fail(err)
		return
	}

	service, err := m.store.CreateService(name, description, price)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Service %s added successfully!\n", service.Name)
}

func (m *Menu) listServices() {
	services, err := m.store.ListServices()
	if err != nil {
		m.fail(err)
		return
	}
	if len(services) == 0 {
		fmt.Fprintln(m.out, "No services found.")
		return
	}

	fmt.Fprintln(m.out, "\nAll Services:")
	for _, service := range services {
		fmt.Fprintf(m.out, "- %s - %s: $%.2f\n", service.Name, service.Description, service.Price)
	}
}

func (m *Menu) bookAppointment() {
	customerID, err := m.promptUint("Enter customer ID")
	if err != nil {
		m.fail(err)
		return
	}
	serviceID, err := m.promptUint("Enter service ID")
	if err != nil {
		m.fail(err)
		return
	}
	staffID, err := m.promptUint("Enter staff ID")
	if err != nil {
		m.fail(err)
		return
	}
	when, err := m.prompt("Enter appointment date (YYYY-MM-DD HH:MM)")
	if err != nil {
		return
	}
	scheduledTime, err := time.ParseInLocation(timeLayout, when, time.Local)
	if err != nil {
		m.fail(err)
		return
	}

	appointment, err := m.store.BookAppointment(customerID, serviceID, staffID, scheduledTime)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Appointment %d scheduled for Customer %d at %s\n",
		appointment.ID, appointment.CustomerID, appointment.ScheduledTime.Format(timeLayout))
}

func (m *Menu) getAppointments() {
	customerID, err := m.promptUint("Enter customer ID")
	if err != nil {
		m.fail(err)
		return
	}

	appointments, err := m.store.UpcomingAppointments(customerID)
	if err != nil {
		m.fail(err)
		return
	}
	if len(appointments) == 0 {
		fmt.Fprintln(m.out, "No upcoming appointments found.")
		return
	}

	for _, appointment := range appointments {
		fmt.Fprintf(m.out, "Appointment %d on %s\n", appointment.ID, appointment.ScheduledTime.Format(timeLayout))
	}
}

func (m *Menu) processPayment() {
	customerID, err := m.promptUint("Enter customer ID")
	if err != nil {
		m.fail(err)
		return
	}
	appointmentID, err := m.promptUint("Enter appointment ID")
	if err != nil {
		m.fail(err)
		return
	}
	amount, err := m.promptFloat("Enter payment amount")
	if err != nil {
		m.fail(err)
		return
	}

	payment, err := m.store.ProcessPayment(customerID, appointmentID, amount)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Payment of $%.2f processed for Customer %d\n", payment.Amount, payment.CustomerID)
}

func (m *Menu) addInventory() {
	productName, err := m.prompt("Enter inventory item name")
	if err != nil {
		return
	}
	quantity, err := m.promptInt("Enter quantity")
	if err != nil {
		m.fail(err)
		return
	}

	item, err := m.store.AddInventoryItem(productName, quantity)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Inventory item %s added with quantity %d\n", item.ProductName, item.Quantity)
}

func (m *Menu) updateInventory() {
	productID, err := m.promptUint("Enter product ID")
	if err != nil {
		m.fail(err)
		return
	}
	quantity, err := m.promptInt("Enter new quantity")
	if err != nil {
		m.fail(err)
		return
	}

	item, err := m.store.SetStock(productID, quantity)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Inventory updated: %s now has %d in stock\n", item.ProductName, item.Quantity)
}

func (m *Menu) listCustomers() {
	customers, err := m.store.ListCustomers()
	if err != nil {
		m.fail(err)
		return
	}
	if len(customers) == 0 {
		fmt.Fprintln(m.out, "No customers found.")
		return
	}

	fmt.Fprintln(m.out, "\nAll Customers:")
	for _, customer := range customers {
		fmt.Fprintf(m.out, "- %s, Email: %s, Phone: %s\n", customer.Name, customer.Email, customer.Phone)
	}
}

func (m *Menu) listStaff() {
	staff, err := m.store.ListStaff()
	if err != nil {
		m.fail(err)
		return
	}
	if len(staff) == 0 {
		fmt.Fprintln(m.out, "No staff found.")
		return
	}

	fmt.Fprintln(m.out, "\nAll Staff:")
	for _, member := range staff {
		fmt.Fprintf(m.out, "- %s, Role: %s\n", member.Name, member.Role)
	}
}
