package services

import (
	"net"
	"net/netip"
	"strings"
)

// RequestContext данные запроса, нужные для записи перехода. Заполняется транспортным слоем.
type RequestContext struct {
	ForwardedFor string // значение X-Forwarded-For как есть
	PeerAddr     string // адрес соединения host:port
	UserAgent    string
	Referer      string
}

// ClientIP возвращает адрес клиента: первый адрес из X-Forwarded-For, если это корректный IP,
// иначе host из адреса соединения. Результат всегда нормализованный IP или пустая строка.
func (rc RequestContext) ClientIP() string {
	if rc.ForwardedFor != "" {
		first, _, _ := strings.Cut(rc.ForwardedFor, ",")
		if ip, ok := normalizeIP(strings.TrimSpace(first)); ok {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(rc.PeerAddr)
	if err != nil {
		host = rc.PeerAddr
	}
	ip, _ := normalizeIP(host)
	return ip
}

// normalizeIP разбирает адрес (допускается порт), отбрасывает зону IPv6 и IPv4-mapped префикс.
func normalizeIP(s string) (string, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		addrPort, apErr := netip.ParseAddrPort(s)
		if apErr != nil {
			return "", false
		}
		addr = addrPort.Addr()
	}
	return addr.WithZone("").Unmap().String(), true
}
