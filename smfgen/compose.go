package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/davmori/smf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// songFile is the YAML description smfgen compose reads. Times and
// durations are in ticks of the file's division.
type songFile struct {
	Title    string      `yaml:"title"`
	BPM      float64     `yaml:"bpm"`
	Division int16       `yaml:"division"`
	Time     *timeSig    `yaml:"time_signature"`
	Key      *keySig     `yaml:"key_signature"`
	Tracks   []songTrack `yaml:"tracks"`
}

type timeSig struct {
	Numerator     uint8 `yaml:"numerator"`
	Denominator   uint8 `yaml:"denominator"`
	ClocksPerTick uint8 `yaml:"clocks_per_tick"`
	Notated32nds  uint8 `yaml:"notated_32nds"`
}

type keySig struct {
	Sharps int8 `yaml:"sharps"`
	Minor  bool `yaml:"minor"`
}

type songTrack struct {
	Name    string     `yaml:"name"`
	Channel uint8      `yaml:"channel"`
	Program *uint8     `yaml:"program"`
	Notes   []songNote `yaml:"notes"`
}

type songNote struct {
	// Note names the pitch, e.g. "C4"; Number gives it directly instead.
	Note     string `yaml:"note"`
	Number   *uint8 `yaml:"number"`
	Time     uint32 `yaml:"time"`
	Duration uint32 `yaml:"duration"`
	Velocity uint8  `yaml:"velocity"`
}

const (
	defaultDivision = 480
	defaultVelocity = 96
)

func composeCommand() *cobra.Command {
	var songPath, outputPath string
	var dumpEvents bool
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build a .mid file from a YAML song description",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(songPath)
			if err != nil {
				return errors.Wrapf(err, "reading %s", songPath)
			}
			var song songFile
			if err := yaml.Unmarshal(data, &song); err != nil {
				return errors.Wrapf(err, "parsing %s", songPath)
			}
			file, err := buildFile(&song)
			if err != nil {
				return err
			}
			if dumpEvents {
				dump(file)
			}
			printUsage(&song)
			out, err := os.Create(outputPath)
			if err != nil {
				return errors.Wrapf(err, "creating %s", outputPath)
			}
			defer out.Close()
			if _, err := file.WriteTo(out); err != nil {
				return errors.Wrapf(err, "writing %s", outputPath)
			}
			log.WithFields(logrus.Fields{
				"file":   outputPath,
				"tracks": len(file.Tracks),
			}).Info("saved")
			return nil
		},
	}
	cmd.Flags().StringVarP(&songPath, "song", "f", "", "the song YAML file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "out.mid",
		"the .mid file to create")
	cmd.Flags().BoolVar(&dumpEvents, "dump", false,
		"print every event of the composed file")
	cmd.MarkFlagRequired("song")
	return cmd
}

// timedEvent is an event payload at an absolute tick position, before the
// song is flattened into delta times.
type timedEvent struct {
	time    uint32
	payload smf.EventPayload
}

// buildFile converts the song description into an SMF file: one MTrk per
// song track, with the tempo and signature events leading the first one.
func buildFile(song *songFile) (*smf.File, error) {
	if len(song.Tracks) == 0 {
		return nil, errors.New("the song has no tracks")
	}
	division := song.Division
	if division == 0 {
		division = defaultDivision
	}
	tracks := make([]*smf.Track, 0, len(song.Tracks))
	for i := range song.Tracks {
		track, err := buildTrack(song, i)
		if err != nil {
			return nil, errors.Wrapf(err, "track %d", i+1)
		}
		tracks = append(tracks, track)
	}
	format := smf.MultipleTrack
	if len(tracks) == 1 {
		format = smf.SingleTrack
	}
	header, err := smf.NewHeader(format, uint16(len(tracks)),
		smf.Division(division))
	if err != nil {
		return nil, err
	}
	return smf.NewFile(header, tracks), nil
}

func buildTrack(song *songFile, index int) (*smf.Track, error) {
	st := &song.Tracks[index]
	channel, err := smf.NewChannel(st.Channel)
	if err != nil {
		return nil, err
	}

	var timed []timedEvent
	if index == 0 {
		events, err := songSetupEvents(song)
		if err != nil {
			return nil, err
		}
		timed = append(timed, events...)
	}
	if st.Program != nil {
		program, err := smf.NewProgram(*st.Program)
		if err != nil {
			return nil, err
		}
		timed = append(timed, timedEvent{payload: smf.ChannelVoice{
			Channel: channel,
			Message: smf.ProgramChange{Program: program},
		}})
	}
	for i, sn := range st.Notes {
		note, err := resolveNote(sn)
		if err != nil {
			return nil, errors.Wrapf(err, "note %d", i+1)
		}
		strike := sn.Velocity
		if strike == 0 {
			strike = defaultVelocity
		}
		velocity, err := smf.NewVelocity(strike)
		if err != nil {
			return nil, errors.Wrapf(err, "note %d", i+1)
		}
		release, err := smf.NewVelocity(0)
		if err != nil {
			return nil, err
		}
		timed = append(timed, timedEvent{
			time: sn.Time,
			payload: smf.ChannelVoice{
				Channel: channel,
				Message: smf.NoteOn{Note: note, Velocity: velocity},
			},
		})
		timed = append(timed, timedEvent{
			time: sn.Time + sn.Duration,
			payload: smf.ChannelVoice{
				Channel: channel,
				Message: smf.NoteOff{Note: note, Velocity: release},
			},
		})
	}
	sort.SliceStable(timed, func(a, b int) bool {
		return timed[a].time < timed[b].time
	})

	var track *smf.Track
	if st.Name != "" {
		track = smf.NewNamedTrack(st.Name)
	} else {
		track = smf.NewTrack(nil)
	}
	last := uint32(0)
	for _, te := range timed {
		delta, err := smf.NewVql(te.time - last)
		if err != nil {
			return nil, err
		}
		track.AddEvent(smf.NewTrackEvent(delta, te.payload))
		last = te.time
	}
	track.AddEvent(smf.NewEndOfTrackEvent())
	return track, nil
}

// songSetupEvents builds the zero-time tempo and signature events that
// lead the first track.
func songSetupEvents(song *songFile) ([]timedEvent, error) {
	var events []timedEvent
	if song.BPM > 0 {
		events = append(events,
			timedEvent{payload: smf.SetTempoBPM(song.BPM)})
	}
	if song.Time != nil {
		clocks := song.Time.ClocksPerTick
		if clocks == 0 {
			clocks = 24
		}
		notated := song.Time.Notated32nds
		if notated == 0 {
			notated = 8
		}
		signature, err := smf.NewTimeSignature(song.Time.Numerator,
			song.Time.Denominator, clocks, notated)
		if err != nil {
			return nil, errors.Wrap(err, "time signature")
		}
		events = append(events, timedEvent{payload: signature})
	}
	if song.Key != nil {
		events = append(events, timedEvent{payload: smf.KeySignature{
			Sharps:  song.Key.Sharps,
			IsMajor: !song.Key.Minor,
		}})
	}
	return events, nil
}

func resolveNote(sn songNote) (smf.Note, error) {
	if sn.Number != nil {
		return smf.NewNote(*sn.Number)
	}
	return smf.NoteFromName(sn.Note)
}

// dump prints every event of the composed file, one line per event.
func dump(file *smf.File) {
	for i, track := range file.Tracks {
		fmt.Printf("Track %d (%d events):\n", i+1, track.EventCount())
		for j, event := range track.Events() {
			fmt.Printf("  %d. %s\n", j+1, event)
		}
	}
}

// printUsage logs how many notes each program plays, per channel.
func printUsage(song *songFile) {
	type usage struct {
		channel uint8
		program uint8
	}
	counts := make(map[usage]int)
	for _, track := range song.Tracks {
		key := usage{channel: track.Channel}
		if track.Program != nil {
			key.program = *track.Program
		}
		counts[key] += len(track.Notes)
	}
	for key, count := range counts {
		log.WithFields(logrus.Fields{
			"channel": key.channel,
			"program": key.program,
			"notes":   count,
		}).Info("instrument usage")
	}
}
