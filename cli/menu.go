package cli

import (
	"errors"
	"io"
	"strings"

	"modern-hotel/services"
	"modern-hotel/utils"
)

// Menu is the interactive text surface: one numbered action per ledger
// operation, looping until the user exits.
type Menu struct {
	svc *services.ReservationService
	p   *prompter
}

func NewMenu(svc *services.ReservationService, in io.Reader, out io.Writer) *Menu {
	return &Menu{svc: svc, p: newPrompter(in, out)}
}

// Run drives the menu loop until the user chooses Exit or input runs out.
func (m *Menu) Run() {
	for {
		m.p.println()
		m.p.println("Modern Hotel Reservation System")
		m.p.println("1. List Available Rooms")
		m.p.println("2. Make Reservation")
		m.p.println("3. Cancel Reservation")
		m.p.println("4. View All Reservations")
		m.p.println("5. Search Reservation")
		m.p.println("6. Edit Reservation")
		m.p.println("7. Exit")

		switch m.p.readLine("Enter your choice: ") {
		case "1":
			m.listAvailableRooms()
		case "2":
			m.makeReservation()
		case "3":
			m.cancelReservation()
		case "4":
			m.viewReservations()
		case "5":
			m.searchReservation()
		case "6":
			m.editReservation()
		case "7", "":
			m.p.println("Thank you for using Modern Hotel Reservation!")
			return
		default:
			m.p.println("Invalid choice. Try again.")
		}
	}
}

func (m *Menu) listAvailableRooms() {
	roomType := m.p.promptRoomType()
	checkIn := m.p.promptCheckInDate()
	nights := m.p.promptPositiveInt("How many nights? ")

	rooms, err := m.svc.AvailableRooms(roomType, checkIn, nights)
	if err != nil {
		m.p.println("Error:", err)
		return
	}
	if len(rooms) == 0 {
		m.p.println("No available rooms for the given date.")
		return
	}
	m.p.println("\nAvailable Rooms:")
	for _, r := range rooms {
		m.p.println(r.String())
	}
}

func (m *Menu) makeReservation() {
	name := m.p.readLine("Enter guest name: ")
	contact := m.p.readLine("Enter guest contact info: ")
	roomType := m.p.promptRoomType()
	checkIn := m.p.promptCheckInDate()
	nights := m.p.promptPositiveInt("How many nights will the guest stay? ")

	res, err := m.svc.Create(name, contact, roomType, checkIn, nights)
	if err != nil && !errors.Is(err, services.ErrNotDurable) {
		m.p.println("Reservation failed:", err)
		return
	}

	m.p.println("Reservation Successful!")
	m.p.printf("Reservation ID: %s\n", res.ReservationID)
	m.p.printf("Room: %d (%s)\n", res.RoomNumber, res.RoomType)
	m.p.printf("Check-in: %s\n", utils.FormatDate(res.CheckIn))
	m.p.printf("Check-out: %s\n", utils.FormatDate(res.CheckOut))
	m.p.printf("Total cost: $%.2f\n", res.TotalCost)
	m.warnIfNotDurable(err)
}

func (m *Menu) cancelReservation() {
	id := m.p.readLine("Enter reservation ID to cancel: ")
	if id == "" {
		return
	}

	err := m.svc.Cancel(id)
	if err != nil && !errors.Is(err, services.ErrNotDurable) {
		m.p.println("Error:", err)
		return
	}
	m.p.printf("Reservation %s canceled.\n", id)
	m.warnIfNotDurable(err)
}

func (m *Menu) viewReservations() {
	reservations := m.svc.List()
	if len(reservations) == 0 {
		m.p.println("No current reservations.")
		return
	}
	m.p.println("\n=== Current Reservations ===")
	for _, r := range reservations {
		m.printDetail(r)
	}
}

func (m *Menu) searchReservation() {
	m.p.println("\nSearch By:")
	m.p.println("1. Guest name")
	m.p.println("2. Reservation ID")

	var results []services.ReservationDetail
	switch m.p.readLine("Enter your choice: ") {
	case "1":
		keyword := m.p.readLine("Enter guest name keyword: ")
		results = m.svc.SearchByGuest(keyword)
	case "2":
		id := m.p.readLine("Enter reservation ID: ")
		res, err := m.svc.Get(id)
		if err == nil {
			results = append(results, *res)
		}
	default:
		m.p.println("Invalid choice!")
		return
	}

	if len(results) == 0 {
		m.p.println("No matching reservations found.")
		return
	}
	for _, r := range results {
		m.printDetail(r)
	}
}

func (m *Menu) editReservation() {
	id := m.p.readLine("Enter reservation ID to edit: ")
	current, err := m.svc.Get(id)
	if err != nil {
		m.p.println("Error:", err)
		return
	}

	m.p.println("\n=== Current Reservation Info ===")
	m.printDetail(*current)

	input := services.EditInput{}
	if name := m.p.readLine("Enter new guest name (leave blank to keep current): "); name != "" {
		input.GuestName = &name
	}
	if contact := m.p.readLine("Enter new contact (leave blank to keep current): "); contact != "" {
		input.GuestContact = &contact
	}
	input.RoomType = m.p.promptOptionalRoomType()
	input.CheckIn = m.p.promptOptionalDate("Enter new check-in date (YYYY-MM-DD) or leave blank: ")
	input.Nights = m.p.promptOptionalPositiveInt("Enter number of nights (leave blank to keep same length): ")

	updated, err := m.svc.Edit(id, input)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrRoomRetained):
		m.p.println("No room available for the requested change. Keeping current room and dates.")
	case errors.Is(err, services.ErrNotDurable):
	default:
		m.p.println("Error:", err)
		return
	}

	m.p.println("\nReservation updated:")
	m.printDetail(*updated)
	m.warnIfNotDurable(err)
}

func (m *Menu) printDetail(r services.ReservationDetail) {
	m.p.printf("\nReservation ID: %s\n", r.ReservationID)
	m.p.printf("Guest: %s (Contact: %s)\n", r.Guest.Name, r.Guest.Contact)
	m.p.printf("Room: %d (%s)\n", r.RoomNumber, r.RoomType)
	m.p.printf("Check-in: %s\n", utils.FormatDate(r.CheckIn))
	m.p.printf("Check-out: %s\n", utils.FormatDate(r.CheckOut))
	m.p.printf("Total Cost: $%.2f\n", r.TotalCost)
	m.p.println(strings.Repeat("-", 40))
}

func (m *Menu) warnIfNotDurable(err error) {
	if errors.Is(err, services.ErrNotDurable) {
		m.p.println("Warning: change applied but could not be saved to storage:", err)
	}
}
