package core

// Record is what the runner observed for one agent at one timestep of a
// run. Optimal tells whether the chosen arm was among the best arms at
// the time of selection.
type Record struct {
	Agent   int
	Run     int
	Step    int
	Action  int
	Reward  float64
	Optimal bool
}

// Trace collects the records of a single run
type Trace struct {
	run     int
	records []Record
}

func NewTrace(run, capacity int) *Trace {
	return &Trace{
		run:     run,
		records: make([]Record, 0, capacity),
	}
}

func (t *Trace) AddRecord(r Record) {
	t.records = append(t.records, r)
}

func (t *Trace) Record(i int) Record {
	return t.records[i]
}

func (t *Trace) Len() int {
	return len(t.records)
}

func (t *Trace) Last() Record {
	return t.records[len(t.records)-1]
}

func (t *Trace) Run() int {
	return t.run
}
