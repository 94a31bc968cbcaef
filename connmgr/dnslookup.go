// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/hybridpos/hposd/btcutil/er"
)

// DNSLookup returns a LookupFunc which asks server, a host:port, for the A
// and AAAA records of a seed instead of going through the system resolver.
func DNSLookup(server string, timeout time.Duration) LookupFunc {
	client := &dns.Client{Net: "udp", Timeout: timeout}
	return func(host string) ([]net.IP, er.R) {
		var ips []net.IP
		for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
			m := new(dns.Msg)
			m.SetQuestion(dns.Fqdn(host), qtype)
			m.RecursionDesired = true
			r, _, errr := client.Exchange(m, server)
			if errr != nil {
				return nil, er.E(errr)
			}
			if r.Rcode != dns.RcodeSuccess {
				return nil, er.Errorf("%s: %s", host, dns.RcodeToString[r.Rcode])
			}
			for _, rr := range r.Answer {
				switch a := rr.(type) {
				case *dns.A:
					ips = append(ips, a.A)
				case *dns.AAAA:
					ips = append(ips, a.AAAA)
				}
			}
		}
		return ips, nil
	}
}
