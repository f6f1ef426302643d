// Package monitoring turns the salt registries and generators of a
// running process into a small web server, so an operator can inspect
// which partitions exist, how far their counters have advanced, and how
// close the registry is to cycling.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"reflect"
	"runtime/pprof"
	"strconv"
	"time"
	"unsafe"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/sarchlab/saltid"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// Monitor can turn the ID-allocation state of a process into a server
// and allows external inspection of registries and generators.
type Monitor struct {
	registry   *saltid.Registry
	generators []*saltid.Generator
	portNumber int
	actualPort int
}

// NewMonitor creates a new Monitor. The port number is taken from the
// SALTID_MONITOR_PORT environment variable when set.
func NewMonitor() *Monitor {
	return &Monitor{portNumber: portFromEnv()}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterRegistry registers the registry whose cursor is served.
func (m *Monitor) RegisterRegistry(r *saltid.Registry) {
	m.registry = r
}

// RegisterGenerator registers a generator to be monitored.
func (m *Monitor) RegisterGenerator(g *saltid.Generator) {
	m.generators = append(m.generators, g)
}

// StartServer starts the monitor as a web server with a custom port if
// wanted.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/registry", m.registryState)
	r.HandleFunc("/api/generators", m.listGenerators)
	r.HandleFunc("/api/generator/{salt}", m.generatorDetails)
	r.HandleFunc("/api/partition/{id}", m.partitionLookup)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.actualPort = listener.Addr().(*net.TCPAddr).Port

	fmt.Fprintf(
		os.Stderr,
		"Monitoring ID allocation with http://localhost:%d\n",
		m.actualPort)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

// OpenDashboard opens the served generator list in the default browser.
// StartServer must have been called first.
func (m *Monitor) OpenDashboard() {
	err := browser.OpenURL(
		fmt.Sprintf("http://localhost:%d/api/generators", m.actualPort))
	dieOnErr(err)
}

func (m *Monitor) registryState(w http.ResponseWriter, _ *http.Request) {
	if m.registry == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("No registry registered"))
		dieOnErr(err)
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(m.registry)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) listGenerators(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, g := range m.generators {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		counter := counterOf(g)
		fmt.Fprintf(w, "{\"salt\":%d,\"counter\":%d,\"remaining\":%d}",
			g.Salt(), counter, uint64(saltid.MaxEntityPerGenerator)-counter)
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) generatorDetails(w http.ResponseWriter, r *http.Request) {
	saltStr := mux.Vars(r)["salt"]

	salt, err := strconv.ParseUint(saltStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	generator := m.findGeneratorOr404(w, saltid.Salt(salt))
	if generator == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(generator)
	serializer.SetMaxDepth(1)
	err = serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) partitionLookup(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	fmt.Fprintf(w, "{\"id\":%d,\"salt\":%d}", id, id%saltid.MaxSalts)
}

func (m *Monitor) findGeneratorOr404(
	w http.ResponseWriter,
	salt saltid.Salt,
) *saltid.Generator {
	var generator *saltid.Generator
	for _, g := range m.generators {
		if g.Salt() == salt {
			generator = g
		}
	}

	if generator == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Generator not found"))
		dieOnErr(err)
	}

	return generator
}

// counterOf reads a generator's counter without an accessor on the core
// type. The read is racy against the owning writer, which is acceptable
// for inspection.
func counterOf(g *saltid.Generator) uint64 {
	field := reflect.ValueOf(g).Elem().FieldByName("counter")

	return reflect.NewAt(
		field.Type(),
		unsafe.Pointer(field.UnsafeAddr()),
	).Elem().Uint()
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
