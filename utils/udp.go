// Package utils wires the UDP receiver to the sFlow decoder pipeline.
package utils

import (
	"fmt"
	"net"
	"net/netip"
	"sync"
	"time"

	reuseport "github.com/libp2p/go-reuseport"
	log "github.com/sirupsen/logrus"
)

// Message is one received UDP payload with its addressing metadata.
type Message struct {
	Src      netip.AddrPort
	Dst      netip.AddrPort
	Payload  []byte
	Received time.Time
}

// DecoderFunc processes a received message.
type DecoderFunc func(msg *Message) error

type udpPacket struct {
	src      *net.UDPAddr
	dst      netip.AddrPort
	size     int
	payload  []byte
	received time.Time
}

var packetPool = sync.Pool{
	New: func() interface{} {
		return &udpPacket{
			payload: make([]byte, 9000),
		}
	},
}

// UDPReceiverConfig tunes the receiver queue and worker behavior.
type UDPReceiverConfig struct {
	QueueSize int
	Blocking  bool
}

// UDPReceiver reads datagrams from one or more reuseport sockets and
// dispatches them to decoder workers.
type UDPReceiver struct {
	q          chan bool
	wg         *sync.WaitGroup
	decodeFunc DecoderFunc
	dispatch   chan *udpPacket

	decoders int
	blocking bool

	Logger *log.Logger
}

// NewUDPReceiver builds a receiver with the given configuration.
func NewUDPReceiver(cfg *UDPReceiverConfig) *UDPReceiver {
	r := &UDPReceiver{
		q:  make(chan bool),
		wg: &sync.WaitGroup{},
	}

	dispatchSize := 1000000
	if cfg != nil {
		if cfg.QueueSize > 0 {
			dispatchSize = cfg.QueueSize
		}
		r.blocking = cfg.Blocking
	}

	r.dispatch = make(chan *udpPacket, dispatchSize)

	return r
}

func (r *UDPReceiver) logError(err error) {
	if r.Logger != nil {
		r.Logger.Error(err)
	}
}

func (r *UDPReceiver) receive(addr string, port int, started chan bool) error {
	pconn, err := reuseport.ListenPacket("udp", fmt.Sprintf("%s:%d", addr, port))
	close(started)
	if err != nil {
		return err
	}

	q := make(chan bool)
	go func() {
		select {
		case <-q: // if routine has exited before
		case <-r.q: // upon general close
		}
		pconn.Close()
	}()
	defer close(q)

	udpconn, ok := pconn.(*net.UDPConn)
	if !ok {
		return fmt.Errorf("not a UDP connection")
	}
	localAddr, _ := netip.ParseAddrPort(udpconn.LocalAddr().String())

	for {
		pkt := packetPool.Get().(*udpPacket)
		pkt.size, pkt.src, err = udpconn.ReadFromUDP(pkt.payload)
		if err != nil {
			packetPool.Put(pkt)
			r.logError(err)
			return err
		}
		if pkt.size == 0 {
			packetPool.Put(pkt)
			continue
		}
		pkt.dst = localAddr
		pkt.received = time.Now().UTC()

		if r.blocking {
			select {
			case r.dispatch <- pkt:
			case <-r.q:
				return nil
			}
		} else {
			select {
			case r.dispatch <- pkt:
			case <-r.q:
				return nil
			default:
				packetPool.Put(pkt)
			}
		}
	}
}

// Decoders starts the processing routines.
func (r *UDPReceiver) Decoders(workers int) error {
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		r.decoders += 1
		go func() {
			defer r.wg.Done()
			for pkt := range r.dispatch {
				if pkt == nil {
					return
				}
				if r.decodeFunc != nil {
					msg := Message{
						Payload:  pkt.payload[:pkt.size],
						Dst:      pkt.dst,
						Received: pkt.received,
					}
					msg.Src, _ = netip.ParseAddrPort(pkt.src.String())
					if err := r.decodeFunc(&msg); err != nil {
						r.logError(err)
					}
				}
				packetPool.Put(pkt)
			}
		}()
	}

	return nil
}

// Receivers starts the UDP receiving workers.
func (r *UDPReceiver) Receivers(sockets int, addr string, port int) error {
	for i := 0; i < sockets; i++ {
		r.wg.Add(1)
		started := make(chan bool)
		go func() {
			defer r.wg.Done()
			r.receive(addr, port, started)
		}()
		<-started
	}

	return nil
}

// Start runs UDP receivers and the processing routines, one decoder per
// receiver socket.
func (r *UDPReceiver) Start(decodeFunc DecoderFunc, workers int, addr string, port int) error {
	r.decodeFunc = decodeFunc
	if err := r.Decoders(workers); err != nil {
		return err
	}
	return r.Receivers(workers, addr, port)
}

// Stop shuts the sockets and drains the workers.
func (r *UDPReceiver) Stop() {
	select {
	case <-r.q:
	default:
		close(r.q)
	}

	for i := 0; i < r.decoders; i++ {
		r.dispatch <- nil
	}

	r.wg.Wait()
}
