package main

import (
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"shipping/internal/entities"
)

var errNotFound = errors.New("not found")

func newStatusCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show backend and wallet connection state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.client.Presenter.Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newLoginCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend canister",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.client.Presenter.ConnectBackend(cmd.Context()); err != nil {
				return err
			}
			return s.client.Presenter.Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newLogoutCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored backend session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.client.Presenter.DisconnectBackend(); err != nil {
				return err
			}
			return s.client.Presenter.Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newWalletConnectCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "wallet-connect",
		Short: "Request account access from the wallet provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.client.Presenter.ConnectWallet(cmd.Context()); err != nil {
				return err
			}
			return s.client.Presenter.Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newWalletDisconnectCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "wallet-disconnect",
		Short: "Drop the wallet account locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.client.Presenter.DisconnectWallet(); err != nil {
				return err
			}
			return s.client.Presenter.Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newWhoamiCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current principal and its user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Principal: %s\n", s.client.Backend.Principal())

			user := s.client.Backend.GetCurrentUser(cmd.Context())
			if user == nil {
				fmt.Fprintln(out, "Not registered")
				return nil
			}
			return printUser(out, user)
		},
	}
}

func newUserCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "user <principal>",
		Short: "Look up a user by principal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := s.client.Backend.GetUser(cmd.Context(), entities.Principal(args[0]))
			if user == nil {
				return fmt.Errorf("user %s: %w", args[0], errNotFound)
			}
			return printUser(cmd.OutOrStdout(), user)
		},
	}
}

func newRegisterUserCommand(s *session) *cobra.Command {
	var (
		userType string
		reg      entities.UserRegistration
	)

	cmd := &cobra.Command{
		Use:   "register-user",
		Short: "Register the current principal as a platform user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := parseUserType(userType)
			if err != nil {
				return err
			}
			reg.UserType = t

			user, err := s.client.Backend.RegisterUser(cmd.Context(), reg)
			if err != nil {
				return err
			}
			return printUser(cmd.OutOrStdout(), user)
		},
	}

	cmd.Flags().StringVar(&userType, "type", entities.UserCustomer.String(), "Customer, Driver, StoreOwner or Admin")
	cmd.Flags().StringVar(&reg.Name, "name", "", "full name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "email")
	cmd.Flags().StringVar(&reg.Phone, "phone", "", "phone")
	markRequired(cmd, "name", "email", "phone")
	return cmd
}

// addressFlags флаги одного адреса с общим префиксом (pickup-, delivery-).
type addressFlags struct {
	prefix  string
	address entities.Address
	lat     float64
	lng     float64
}

func bindAddress(fs *pflag.FlagSet, prefix string) *addressFlags {
	a := &addressFlags{prefix: prefix}
	fs.StringVar(&a.address.Street, prefix+"-street", "", prefix+" street")
	fs.StringVar(&a.address.City, prefix+"-city", "", prefix+" city")
	fs.StringVar(&a.address.State, prefix+"-state", "", prefix+" state")
	fs.StringVar(&a.address.PostalCode, prefix+"-postal-code", "", prefix+" postal code")
	fs.StringVar(&a.address.Country, prefix+"-country", "", prefix+" country")
	fs.Float64Var(&a.lat, prefix+"-lat", 0, prefix+" latitude")
	fs.Float64Var(&a.lng, prefix+"-lng", 0, prefix+" longitude")
	return a
}

// resolve координаты есть, только если заданы обе.
func (a *addressFlags) resolve(fs *pflag.FlagSet) (entities.Address, error) {
	latSet, lngSet := fs.Changed(a.prefix+"-lat"), fs.Changed(a.prefix+"-lng")
	if latSet != lngSet {
		return entities.Address{}, fmt.Errorf("--%s-lat and --%s-lng must be set together", a.prefix, a.prefix)
	}

	address := a.address
	if latSet {
		address.Coordinates = &entities.Coordinates{Latitude: a.lat, Longitude: a.lng}
	}
	return address, nil
}

func newCreateShipmentCommand(s *session) *cobra.Command {
	var (
		create       entities.ShipmentCreate
		instructions string
	)

	cmd := &cobra.Command{
		Use:   "create-shipment",
		Short: "Create a shipment on behalf of the current principal",
		Args:  cobra.NoArgs,
	}

	fs := cmd.Flags()
	pickup := bindAddress(fs, "pickup")
	delivery := bindAddress(fs, "delivery")
	fs.StringVar(&create.RecipientName, "recipient-name", "", "recipient name")
	fs.StringVar(&create.RecipientPhone, "recipient-phone", "", "recipient phone")
	fs.StringVar(&create.PackageDetails.Description, "description", "", "package description")
	fs.Float64Var(&create.PackageDetails.Weight, "weight", 0, "weight, kg")
	fs.Float64Var(&create.PackageDetails.Dimensions.Length, "length", 0, "length, cm")
	fs.Float64Var(&create.PackageDetails.Dimensions.Width, "width", 0, "width, cm")
	fs.Float64Var(&create.PackageDetails.Dimensions.Height, "height", 0, "height, cm")
	fs.Float64Var(&create.PackageDetails.Value, "value", 0, "declared value")
	fs.BoolVar(&create.PackageDetails.Fragile, "fragile", false, "fragile package")
	fs.StringVar(&instructions, "instructions", "", "special instructions")
	markRequired(cmd, "recipient-name", "recipient-phone", "pickup-street", "pickup-city",
		"delivery-street", "delivery-city", "description", "weight")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		var err error
		if create.PickupAddress, err = pickup.resolve(fs); err != nil {
			return err
		}
		if create.DeliveryAddress, err = delivery.resolve(fs); err != nil {
			return err
		}
		if fs.Changed("instructions") {
			create.PackageDetails.SpecialInstructions = pointer.To(instructions)
		}

		shipment, err := s.client.Backend.CreateShipment(cmd.Context(), create)
		if err != nil {
			return err
		}
		return printShipment(cmd.OutOrStdout(), shipment)
	}
	return cmd
}

func newUpdateStatusCommand(s *session) *cobra.Command {
	var (
		location    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update-status <shipment-id> <status>",
		Short: "Move a shipment to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseShipmentStatus(args[1])
			if err != nil {
				return err
			}

			update := entities.ShipmentStatusUpdate{
				ShipmentID:  args[0],
				Status:      status,
				Description: description,
			}
			if cmd.Flags().Changed("location") {
				update.Location = pointer.To(location)
			}

			shipment, err := s.client.Backend.UpdateShipmentStatus(cmd.Context(), update)
			if err != nil {
				return err
			}
			return printShipment(cmd.OutOrStdout(), shipment)
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "current location")
	cmd.Flags().StringVar(&description, "description", "", "event description")
	return cmd
}

func newRegisterDriverCommand(s *session) *cobra.Command {
	var reg entities.DriverRegistration

	cmd := &cobra.Command{
		Use:   "register-driver",
		Short: "Register the current principal as a driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			driver, err := s.client.Backend.RegisterDriver(cmd.Context(), reg)
			if err != nil {
				return err
			}
			return printDrivers(cmd.OutOrStdout(), []entities.Driver{*driver})
		},
	}

	cmd.Flags().StringVar(&reg.Name, "name", "", "driver name")
	cmd.Flags().StringVar(&reg.Phone, "phone", "", "driver phone")
	cmd.Flags().StringVar(&reg.VehicleInfo.VehicleType, "vehicle-type", "", "vehicle type")
	cmd.Flags().StringVar(&reg.VehicleInfo.LicensePlate, "license-plate", "", "license plate")
	cmd.Flags().Float64Var(&reg.VehicleInfo.Capacity, "capacity", 0, "capacity, kg")
	markRequired(cmd, "name", "phone", "vehicle-type", "license-plate")
	return cmd
}

func newAssignDriverCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "assign-driver <shipment-id> <driver-principal>",
		Short: "Assign a driver and schedule pickup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shipment, err := s.client.Backend.AssignDriverToShipment(cmd.Context(), args[0], entities.Principal(args[1]))
			if err != nil {
				return err
			}
			return printShipment(cmd.OutOrStdout(), shipment)
		},
	}
}

func newCreateReturnCommand(s *session) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "create-return <shipment-id>",
		Short: "Request a return of a delivered shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := s.client.Backend.CreateReturnRequest(cmd.Context(), args[0], reason)
			if err != nil {
				return err
			}
			return printReturns(cmd.OutOrStdout(), []entities.ReturnRequest{*request})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "return reason")
	markRequired(cmd, "reason")
	return cmd
}

func newShipmentCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "shipment <shipment-id>",
		Short: "Show a shipment with its tracking history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shipment := s.client.Backend.GetShipment(cmd.Context(), args[0])
			if shipment == nil {
				return fmt.Errorf("shipment %s: %w", args[0], errNotFound)
			}
			return printShipment(cmd.OutOrStdout(), shipment)
		},
	}
}

func newShipmentsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "shipments",
		Short: "List shipments sent by the current principal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printShipmentList(cmd.OutOrStdout(), s.client.Backend.GetUserShipments(cmd.Context()))
		},
	}
}

func newDriversCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List available drivers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printDrivers(cmd.OutOrStdout(), s.client.Backend.GetAvailableDrivers(cmd.Context()))
		},
	}
}

func newReturnsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "returns",
		Short: "List return requests of the current principal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printReturns(cmd.OutOrStdout(), s.client.Backend.GetReturnRequests(cmd.Context()))
		},
	}
}

func newStatsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show platform statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats := s.client.Backend.GetPlatformStats(cmd.Context())
			if stats == nil {
				return fmt.Errorf("platform stats: %w", errNotFound)
			}
			return printStats(cmd.OutOrStdout(), stats)
		},
	}
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("mark flag %q required: %v", name, err))
		}
	}
}

func parseUserType(s string) (entities.UserType, error) {
	t := entities.UserType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown user type %q", s)
	}
	return t, nil
}

func parseShipmentStatus(s string) (entities.ShipmentStatus, error) {
	status := entities.ShipmentStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown shipment status %q", s)
	}
	return status, nil
}
