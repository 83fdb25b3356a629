package network

// Info tells the front end how other players on the LAN can reach this server
type Info struct {
	LanIP      *string `json:"lanIp"`
	ServerPort int     `json:"serverPort"`
	Scheme     string  `json:"scheme"`
}
