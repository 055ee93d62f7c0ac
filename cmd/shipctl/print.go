package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"shipping/internal/entities"
	"shipping/internal/wire"
)

// location часовой пояс вывода, в тестах подменяется на UTC.
var location = time.Local

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func formatTime(t time.Time) string {
	return wire.FormatTime(t, location)
}

func formatOptTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatTime(*t)
}

func formatOpt(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatAddress(a entities.Address) string {
	s := fmt.Sprintf("%s, %s, %s %s, %s", a.Street, a.City, a.State, a.PostalCode, a.Country)
	if a.Coordinates != nil {
		s += fmt.Sprintf(" (%.5f, %.5f)", a.Coordinates.Latitude, a.Coordinates.Longitude)
	}
	return s
}

func printUser(w io.Writer, u *entities.User) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Principal:\t%s\n", u.ID)
	fmt.Fprintf(tw, "Type:\t%s\n", u.UserType)
	fmt.Fprintf(tw, "Name:\t%s\n", u.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Phone:\t%s\n", u.Phone)
	fmt.Fprintf(tw, "Active:\t%t\n", u.IsActive)
	fmt.Fprintf(tw, "Registered:\t%s\n", formatTime(u.CreatedAt))
	return tw.Flush()
}

func printShipment(w io.Writer, s *entities.Shipment) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Shipment:\t%s\n", s.ID)
	fmt.Fprintf(tw, "Status:\t%s\n", s.Status)
	fmt.Fprintf(tw, "Sender:\t%s\n", s.SenderID)
	fmt.Fprintf(tw, "Recipient:\t%s (%s)\n", s.RecipientName, s.RecipientPhone)
	fmt.Fprintf(tw, "Pickup:\t%s\n", formatAddress(s.PickupAddress))
	fmt.Fprintf(tw, "Delivery:\t%s\n", formatAddress(s.DeliveryAddress))
	fmt.Fprintf(tw, "Package:\t%s, %.2f kg, fragile: %t\n",
		s.PackageDetails.Description, s.PackageDetails.Weight, s.PackageDetails.Fragile)
	if s.DriverID != nil {
		fmt.Fprintf(tw, "Driver:\t%s\n", *s.DriverID)
	}
	fmt.Fprintf(tw, "Cost:\t%.2f (%s)\n", s.Cost, s.PaymentStatus)
	fmt.Fprintf(tw, "Created:\t%s\n", formatTime(s.CreatedAt))
	fmt.Fprintf(tw, "Updated:\t%s\n", formatTime(s.UpdatedAt))
	fmt.Fprintf(tw, "Delivered:\t%s\n", formatOptTime(s.ActualDelivery))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.TrackingHistory) == 0 {
		return nil
	}

	fmt.Fprintln(w, "\nTracking history:")
	tw = newTabWriter(w)
	fmt.Fprintln(tw, "TIME\tSTATUS\tLOCATION\tDESCRIPTION\tBY")
	for _, e := range s.TrackingHistory {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			formatTime(e.Timestamp), e.Status, formatOpt(e.Location), e.Description, e.UpdatedBy)
	}
	return tw.Flush()
}

func printShipmentList(w io.Writer, shipments []entities.Shipment) error {
	if len(shipments) == 0 {
		fmt.Fprintln(w, "No shipments")
		return nil
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tSTATUS\tRECIPIENT\tCOST\tCREATED")
	for _, s := range shipments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n",
			s.ID, s.Status, s.RecipientName, s.Cost, formatTime(s.CreatedAt))
	}
	return tw.Flush()
}

func printDrivers(w io.Writer, drivers []entities.Driver) error {
	if len(drivers) == 0 {
		fmt.Fprintln(w, "No available drivers")
		return nil
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "PRINCIPAL\tNAME\tVEHICLE\tPLATE\tRATING\tDELIVERIES")
	for _, d := range drivers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%d\n",
			d.ID, d.Name, d.VehicleInfo.VehicleType, d.VehicleInfo.LicensePlate, d.Rating, d.TotalDeliveries)
	}
	return tw.Flush()
}

func printReturns(w io.Writer, requests []entities.ReturnRequest) error {
	if len(requests) == 0 {
		fmt.Fprintln(w, "No return requests")
		return nil
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tSHIPMENT\tSTATUS\tREASON\tCREATED")
	for _, r := range requests {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.ShipmentID, r.Status, r.Reason, formatTime(r.CreatedAt))
	}
	return tw.Flush()
}

func printStats(w io.Writer, s *entities.PlatformStats) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Users:\t%d\n", s.TotalUsers)
	fmt.Fprintf(tw, "Shipments:\t%d\n", s.TotalShipments)
	fmt.Fprintf(tw, "Drivers:\t%d\n", s.TotalDrivers)
	fmt.Fprintf(tw, "Delivered:\t%d\n", s.DeliveredShipments)
	fmt.Fprintf(tw, "Pending:\t%d\n", s.PendingShipments)
	return tw.Flush()
}
