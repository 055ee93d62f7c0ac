package wire

type Mode string

const (
	ModeQuery  Mode = "query"
	ModeUpdate Mode = "update"
)

const (
	MethodRegisterUser           = "register_user"
	MethodGetUser                = "get_user"
	MethodGetCurrentUser         = "get_current_user"
	MethodCreateShipment         = "create_shipment"
	MethodGetShipment            = "get_shipment"
	MethodGetUserShipments       = "get_user_shipments"
	MethodUpdateShipmentStatus   = "update_shipment_status"
	MethodRegisterDriver         = "register_driver"
	MethodGetAvailableDrivers    = "get_available_drivers"
	MethodAssignDriverToShipment = "assign_driver_to_shipment"
	MethodCreateReturnRequest    = "create_return_request"
	MethodGetReturnRequests      = "get_return_requests"
	MethodGetPlatformStats       = "get_platform_stats"
)

// Method описание метода бэкенда: имя, режим вызова и сигнатура в терминах проводных типов.
type Method struct {
	Name    string
	Mode    Mode
	Args    []string
	Returns string
}

type Interface struct {
	methods map[string]Method
	order   []string
}

func NewInterface(methods ...Method) Interface {
	iface := Interface{
		methods: make(map[string]Method, len(methods)),
		order:   make([]string, 0, len(methods)),
	}
	for _, m := range methods {
		iface.methods[m.Name] = m
		iface.order = append(iface.order, m.Name)
	}
	return iface
}

func (i Interface) Lookup(name string) (Method, bool) {
	m, ok := i.methods[name]
	return m, ok
}

func (i Interface) Methods() []Method {
	res := make([]Method, 0, len(i.order))
	for _, name := range i.order {
		res = append(res, i.methods[name])
	}
	return res
}

// Backend интерфейс шиппинг-канистры.
var Backend = NewInterface(
	Method{Name: MethodRegisterUser, Mode: ModeUpdate, Args: []string{"text", "text", "text", "UserType"}, Returns: "Result<User, text>"},
	Method{Name: MethodGetUser, Mode: ModeQuery, Args: []string{"principal"}, Returns: "opt User"},
	Method{Name: MethodGetCurrentUser, Mode: ModeQuery, Returns: "opt User"},
	Method{Name: MethodCreateShipment, Mode: ModeUpdate, Args: []string{"text", "text", "Address", "Address", "PackageDetails"}, Returns: "Result<Shipment, text>"},
	Method{Name: MethodGetShipment, Mode: ModeQuery, Args: []string{"text"}, Returns: "opt Shipment"},
	Method{Name: MethodGetUserShipments, Mode: ModeQuery, Returns: "vec Shipment"},
	Method{Name: MethodUpdateShipmentStatus, Mode: ModeUpdate, Args: []string{"text", "ShipmentStatus", "opt text", "text"}, Returns: "Result<Shipment, text>"},
	Method{Name: MethodRegisterDriver, Mode: ModeUpdate, Args: []string{"text", "text", "VehicleInfo"}, Returns: "Result<Driver, text>"},
	Method{Name: MethodGetAvailableDrivers, Mode: ModeQuery, Returns: "vec Driver"},
	Method{Name: MethodAssignDriverToShipment, Mode: ModeUpdate, Args: []string{"text", "principal"}, Returns: "Result<Shipment, text>"},
	Method{Name: MethodCreateReturnRequest, Mode: ModeUpdate, Args: []string{"text", "text"}, Returns: "Result<ReturnRequest, text>"},
	Method{Name: MethodGetReturnRequests, Mode: ModeQuery, Returns: "vec ReturnRequest"},
	Method{Name: MethodGetPlatformStats, Mode: ModeQuery, Returns: "PlatformStats"},
)
