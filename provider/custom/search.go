package custom

import (
	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	lua "github.com/yuin/gopher-lua"
)

func (s *luaSource) Search(query string) ([]*source.Video, error) {
	val, err := s.call(constant.SearchVideosFn, lua.LTTable, lua.LString(query))
	if err != nil {
		return nil, err
	}

	var (
		videos []*source.Video
		errs   []error
	)

	val.(*lua.LTable).ForEach(func(k, v lua.LValue) {
		table, ok := v.(*lua.LTable)
		if k.Type() != lua.LTNumber || !ok {
			return
		}

		video, err := videoFromTable(table)
		if err != nil {
			errs = append(errs, err)
			return
		}

		video.Source = s
		videos = append(videos, video)
	})

	if len(videos) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}

	if len(errs) > 0 {
		log.Warnf("%s: skipped %d malformed results for %q", s.name, len(errs), query)
	}

	return videos, nil
}
