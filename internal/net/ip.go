package net

import (
	"log"
	"net"
)

// OutgoingIP is the local address other machines on the LAN can reach the
// mirror at. Without a default route it falls back to the first LAN
// interface.
func OutgoingIP() string {
	if conn, err := net.Dial("udp", "8.8.8.8:80"); err == nil {
		defer conn.Close()
		return conn.LocalAddr().(*net.UDPAddr).IP.String()
	}
	ip := lanIPv4()
	if ip.IsLoopback() {
		log.Println("[SHARE] No LAN address found, mirror link uses loopback")
	}
	return ip.String()
}

// lanIPv4 is the first IPv4 address on an interface that is up and not
// loopback, or 127.0.0.1 when there is none.
func lanIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPv4(127, 0, 0, 1)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	return net.IPv4(127, 0, 0, 1)
}
