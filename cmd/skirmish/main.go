package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fleetsim/internal/combat"
	"fleetsim/internal/config"
)

func main() {
	var scenarioPath, dir, out string
	var saveLog bool
	var workers int
	flag.StringVar(&scenarioPath, "scenario", "assets/scenarios/duel.yaml", "scenario file (single run)")
	flag.StringVar(&dir, "dir", "", "run every scenario in this directory instead")
	flag.StringVar(&out, "out", "out.json", "output file (report or batch summary)")
	flag.BoolVar(&saveLog, "log", true, "include the full combat log in the report")
	flag.IntVar(&workers, "workers", 8, "batch worker count")
	flag.Parse()

	if dir == "" {
		runSingle(scenarioPath, out, saveLog)
		return
	}
	runBatch(dir, out, workers)
}

func runSingle(path, out string, saveLog bool) {
	sc, err := config.LoadScenario(path)
	if err != nil {
		fatal(err)
	}
	report, err := resolve(sc, saveLog)
	if err != nil {
		fatal(err)
	}
	if err := os.WriteFile(out, combat.MarshalPretty(report), 0644); err != nil {
		fatal(err)
	}
	fmt.Printf("%s: %s, %d actions, %d/%d attackers and %d/%d defenders surviving -> %s\n",
		sc.Name, report.Outcome, report.Actions,
		report.AttackersAlive, len(sc.Attackers),
		report.DefendersAlive, len(sc.Defenders), out)
}

func runBatch(dir, out string, workers int) {
	paths, err := config.ListScenarios(dir)
	if err != nil {
		fatal(err)
	}
	if len(paths) == 0 {
		fatal(fmt.Errorf("no scenario files in %s", dir))
	}
	if workers < 1 {
		workers = 1
	}

	type tally struct {
		AttackerWins int
		DefenderWins int
		Draws        int
		ByScenario   map[string]string
		Errors       map[string]string
	}
	st := tally{ByScenario: map[string]string{}, Errors: map[string]string{}}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan string, len(paths))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				sc, err := config.LoadScenario(path)
				if err == nil {
					var report combat.Report
					report, err = resolve(sc, false)
					if err == nil {
						mu.Lock()
						st.ByScenario[sc.Name] = report.Outcome.String()
						switch report.Outcome {
						case combat.AttackerVictory:
							st.AttackerWins++
						case combat.DefenderVictory:
							st.DefenderWins++
						default:
							st.Draws++
						}
						mu.Unlock()
						continue
					}
				}
				mu.Lock()
				st.Errors[filepath.Base(path)] = err.Error()
				mu.Unlock()
			}
		}()
	}
	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	summary := map[string]any{
		"runs":          len(paths),
		"attacker_wins": st.AttackerWins,
		"defender_wins": st.DefenderWins,
		"draws":         st.Draws,
		"by_scenario":   st.ByScenario,
	}
	if len(st.Errors) > 0 {
		summary["errors"] = st.Errors
	}
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		fatal(err)
	}
	fmt.Printf("Batch of %d done -> %s\n", len(paths), filepath.Base(out))
}

func resolve(sc *config.ScenarioConfig, saveLog bool) (combat.Report, error) {
	attackers, defenders, attackerPos, defenderPos, err := sc.Fleets()
	if err != nil {
		return combat.Report{}, err
	}
	outcome, log := combat.SimulateCombat(attackers, defenders, attackerPos, defenderPos, sc.MaxRounds)
	return combat.BuildReport(outcome, attackers, defenders, log, saveLog), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
