package schema

// InterfaceVersion is the schema tag the recorder writes at the start
// of every stream. It must be bumped with every layout change below;
// conversion refuses streams carrying any other value.
const InterfaceVersion uint64 = 3200001

// A32NX returns the flight data recorder record layout: the outputs of
// the redundant fly-by-wire computers (two ELACs, three SECs, two
// FACs), the autopilot state machine and law outputs, the autothrust
// output, engine data and auxiliary sim data, in stream byte order.
//
// This is data, not logic. Field order here is the byte order on disk
// and the column order in the output, so reordering anything is a
// breaking change that requires a new InterfaceVersion.
func A32NX() *Record {
	return New(
		Group("elac_1_bus", elacOutBus()...),
		Group("elac_1_discrete", elacDiscreteOutputs()...),
		Group("elac_1_analog", elacAnalogOutputs()...),
		Group("elac_2_bus", elacOutBus()...),
		Group("elac_2_discrete", elacDiscreteOutputs()...),
		Group("elac_2_analog", elacAnalogOutputs()...),
		Group("sec_1_bus", secOutBus()...),
		Group("sec_1_discrete", secDiscreteOutputs()...),
		Group("sec_1_analog", secAnalogOutputs()...),
		Group("sec_2_bus", secOutBus()...),
		Group("sec_2_discrete", secDiscreteOutputs()...),
		Group("sec_2_analog", secAnalogOutputs()...),
		Group("sec_3_bus", secOutBus()...),
		Group("sec_3_discrete", secDiscreteOutputs()...),
		Group("sec_3_analog", secAnalogOutputs()...),
		Group("fac_1_bus", facBus()...),
		Group("fac_1_discrete", facDiscreteOutputs()...),
		Group("fac_1_analog", facAnalogOutputs()...),
		Group("fac_2_bus", facBus()...),
		Group("fac_2_discrete", facDiscreteOutputs()...),
		Group("fac_2_analog", facAnalogOutputs()...),
		Group("ap_sm", autopilotStateMachine()...),
		Group("ap_law", autopilotLaws()...),
		Group("athr", autothrust()...),
		Group("engine", engineData()...),
		Group("data", additionalData()...),
	)
}

// arinc declares an ARINC 429 bus word: the sign/status matrix and the
// 32-bit payload as recorded by the FBW model.
func arinc(name string) Field {
	return Group(name,
		Leaf("ssm", U32),
		Leaf("value", F32),
	)
}

func elacOutBus() []Field {
	return []Field{
		arinc("left_aileron_position_deg"),
		arinc("right_aileron_position_deg"),
		arinc("left_elevator_position_deg"),
		arinc("right_elevator_position_deg"),
		arinc("ths_position_deg"),
		arinc("left_sidestick_pitch_command_deg"),
		arinc("right_sidestick_pitch_command_deg"),
		arinc("left_sidestick_roll_command_deg"),
		arinc("right_sidestick_roll_command_deg"),
		arinc("rudder_pedal_position_deg"),
		arinc("aileron_command_deg"),
		arinc("roll_spoiler_command_deg"),
		arinc("yaw_damper_command_deg"),
		arinc("elevator_double_pressurization_command_deg"),
		arinc("speedbrake_extension_deg"),
		arinc("discrete_status_word_1"),
		arinc("discrete_status_word_2"),
	}
}

func elacDiscreteOutputs() []Field {
	return []Field{
		Leaf("pitch_axis_ok", Bool),
		Leaf("left_aileron_ok", Bool),
		Leaf("right_aileron_ok", Bool),
		Leaf("digital_output_validated", Bool),
		Leaf("ap_1_authorised", Bool),
		Leaf("ap_2_authorised", Bool),
		Leaf("left_aileron_active_mode", Bool),
		Leaf("right_aileron_active_mode", Bool),
		Leaf("left_elevator_damping_mode", Bool),
		Leaf("right_elevator_damping_mode", Bool),
		Leaf("ths_active", Bool),
		Leaf("batch_output_validated", Bool),
	}
}

func elacAnalogOutputs() []Field {
	return []Field{
		Leaf("left_elev_pos_order_deg", F64),
		Leaf("right_elev_pos_order_deg", F64),
		Leaf("ths_pos_order", F64),
		Leaf("left_aileron_pos_order", F64),
		Leaf("right_aileron_pos_order", F64),
	}
}

func secOutBus() []Field {
	return []Field{
		arinc("left_spoiler_1_position_deg"),
		arinc("right_spoiler_1_position_deg"),
		arinc("left_spoiler_2_position_deg"),
		arinc("right_spoiler_2_position_deg"),
		arinc("left_elevator_position_deg"),
		arinc("right_elevator_position_deg"),
		arinc("ths_position_deg"),
		arinc("left_sidestick_pitch_command_deg"),
		arinc("right_sidestick_pitch_command_deg"),
		arinc("left_sidestick_roll_command_deg"),
		arinc("right_sidestick_roll_command_deg"),
		arinc("speedbrake_lever_command_deg"),
		arinc("thrust_lever_angle_1_deg"),
		arinc("thrust_lever_angle_2_deg"),
		arinc("discrete_status_word_1"),
		arinc("discrete_status_word_2"),
	}
}

func secDiscreteOutputs() []Field {
	return []Field{
		Leaf("thr_reverse_selected", Bool),
		Leaf("left_elevator_ok", Bool),
		Leaf("right_elevator_ok", Bool),
		Leaf("ground_spoiler_out", Bool),
		Leaf("sec_failed", Bool),
		Leaf("left_elevator_damping_mode", Bool),
		Leaf("right_elevator_damping_mode", Bool),
		Leaf("ths_active", Bool),
		Leaf("batch_output_validated", Bool),
	}
}

func secAnalogOutputs() []Field {
	return []Field{
		Leaf("left_elev_pos_order_deg", F64),
		Leaf("right_elev_pos_order_deg", F64),
		Leaf("ths_pos_order_deg", F64),
		Leaf("left_spoiler_1_pos_order_deg", F64),
		Leaf("right_spoiler_1_pos_order_deg", F64),
		Leaf("left_spoiler_2_pos_order_deg", F64),
		Leaf("right_spoiler_2_pos_order_deg", F64),
		Leaf("speedbrake_command_deg", F64),
	}
}

func facBus() []Field {
	return []Field{
		arinc("discrete_word_1"),
		arinc("gamma_a_deg"),
		arinc("gamma_t_deg"),
		arinc("total_weight_lbs"),
		arinc("center_of_gravity_pos_percent"),
		arinc("sideslip_target_deg"),
		arinc("fac_slat_angle_deg"),
		arinc("fac_flap_angle_deg"),
		arinc("discrete_word_2"),
		arinc("rudder_travel_limit_command_deg"),
		arinc("delta_r_yaw_damper_deg"),
		arinc("estimated_sideslip_deg"),
		arinc("v_alpha_lim_kn"),
		arinc("v_ls_kn"),
		arinc("v_stall_kn"),
		arinc("v_alpha_prot_kn"),
		arinc("v_stall_warn_kn"),
		arinc("speed_trend_kn"),
		arinc("v_3_kn"),
		arinc("v_4_kn"),
		arinc("v_man_kn"),
		arinc("v_max_kn"),
		arinc("v_fe_next_kn"),
		arinc("discrete_word_3"),
		arinc("discrete_word_4"),
		arinc("discrete_word_5"),
		arinc("delta_r_rudder_trim_deg"),
		arinc("rudder_trim_pos_deg"),
	}
}

func facDiscreteOutputs() []Field {
	return []Field{
		Leaf("fac_healthy", Bool),
		Leaf("yaw_damper_engaged", Bool),
		Leaf("rudder_trim_engaged", Bool),
		Leaf("rudder_travel_lim_engaged", Bool),
		Leaf("rudder_travel_lim_emergency_reset", Bool),
		Leaf("yaw_damper_avail_for_norm_law", Bool),
	}
}

func facAnalogOutputs() []Field {
	return []Field{
		Leaf("yaw_damper_order_deg", F64),
		Leaf("rudder_trim_order_deg", F64),
		Leaf("rudder_travel_limit_order_deg", F64),
	}
}

func autopilotStateMachine() []Field {
	return []Field{
		Group("time",
			Leaf("dt", F64),
			Leaf("simulation_time", F64),
		),
		Group("output",
			Leaf("enabled_ap1", Bool),
			Leaf("enabled_ap2", Bool),
			Leaf("lateral_law", I32),
			Leaf("lateral_mode", I32),
			Leaf("lateral_mode_armed", I32),
			Leaf("vertical_law", I32),
			Leaf("vertical_mode", I32),
			Leaf("vertical_mode_armed", I32),
			Leaf("mode_reversion_lateral", Bool),
			Leaf("mode_reversion_vertical", Bool),
			Leaf("mode_reversion_triple_click", Bool),
			Leaf("mode_reversion_fma", Bool),
			Leaf("speed_protection_mode", Bool),
			Leaf("autothrust_mode", I32),
			Leaf("psi_c_deg", F64),
			Leaf("h_c_ft", F64),
			Leaf("h_dot_c_fpm", F64),
			Leaf("v_c_kn", F64),
			Leaf("fd_connect", Bool),
			Leaf("flight_phase", I32),
			Leaf("alt_cstr_applicable", Bool),
		),
	}
}

func autopilotLaws() []Field {
	return []Field{
		Group("flight_director",
			Leaf("theta_c_deg", F64),
			Leaf("phi_c_deg", F64),
			Leaf("beta_c_deg", F64),
		),
		Group("autopilot",
			Leaf("theta_c_deg", F64),
			Leaf("phi_c_deg", F64),
			Leaf("beta_c_deg", F64),
			Leaf("drift_deg", F64),
		),
	}
}

func autothrust() []Field {
	return []Field{
		Group("output",
			Leaf("sim_throttle_lever_1_pos", F64),
			Leaf("sim_throttle_lever_2_pos", F64),
			Leaf("sim_thrust_mode_1", F64),
			Leaf("sim_thrust_mode_2", F64),
			Leaf("n1_tla_1_percent", F64),
			Leaf("n1_tla_2_percent", F64),
			Leaf("is_in_reverse_1", Bool),
			Leaf("is_in_reverse_2", Bool),
			Leaf("thrust_limit_type", I32),
			Leaf("thrust_limit_percent", F64),
			Leaf("n1_c_1_percent", F64),
			Leaf("n1_c_2_percent", F64),
			Leaf("status", I32),
			Leaf("mode", I32),
			Leaf("mode_message", I32),
		),
	}
}

func engineData() []Field {
	return []Field{
		Leaf("engine_1_n1", F64),
		Leaf("engine_2_n1", F64),
		Leaf("engine_idle_n1", F64),
		Leaf("engine_1_n2", F64),
		Leaf("engine_2_n2", F64),
		Leaf("engine_idle_n2", F64),
		Leaf("engine_1_egt", F64),
		Leaf("engine_2_egt", F64),
		Leaf("engine_idle_egt", F64),
		Leaf("engine_1_ff", F64),
		Leaf("engine_2_ff", F64),
		Leaf("engine_idle_ff", F64),
		Leaf("engine_1_pre_ff", F64),
		Leaf("engine_2_pre_ff", F64),
		Leaf("engine_imbalance", F64),
		Leaf("engine_1_state", F64),
		Leaf("engine_2_state", F64),
		Leaf("engine_1_timer", F64),
		Leaf("engine_2_timer", F64),
		Leaf("fuel_used_left", F64),
		Leaf("fuel_used_right", F64),
		Leaf("fuel_quantity", F64),
		Leaf("fuel_left_outer_qty", F64),
		Leaf("fuel_left_inner_qty", F64),
		Leaf("fuel_center_qty", F64),
		Leaf("fuel_right_inner_qty", F64),
		Leaf("fuel_right_outer_qty", F64),
	}
}

func additionalData() []Field {
	return []Field{
		Leaf("master_warning_active", Bool),
		Leaf("master_caution_active", Bool),
		Leaf("park_brake_lever_pos", F64),
		Leaf("brake_pedal_left_pos", F64),
		Leaf("brake_pedal_right_pos", F64),
		Leaf("brake_left_sim_pos", F64),
		Leaf("brake_right_sim_pos", F64),
		Leaf("autobrake_armed_mode", F64),
		Leaf("autobrake_decel_light", Bool),
		Leaf("spoilers_handle_pos", F64),
		Leaf("spoilers_armed", Bool),
		Leaf("spoilers_handle_sim_pos", F64),
		Leaf("ground_spoilers_active", Bool),
		Leaf("flaps_handle_percent", F64),
		Leaf("flaps_handle_index", F64),
		Leaf("gear_handle_pos", F64),
		Leaf("hydraulic_green_pressure", F64),
		Leaf("hydraulic_blue_pressure", F64),
		Leaf("hydraulic_yellow_pressure", F64),
		Leaf("throttle_lever_1_pos", F64),
		Leaf("throttle_lever_2_pos", F64),
		Leaf("corrected_n1_1_percent", F64),
		Leaf("corrected_n1_2_percent", F64),
		Leaf("assistance_takeoff_enabled", Bool),
		Leaf("assistance_landing_enabled", Bool),
		Leaf("ailerons_position", F64),
		Leaf("elevators_position", F64),
		Leaf("rudder_position", F64),
		Leaf("simulation_rate", F64),
		Leaf("simulation_time", F64),
		Leaf("paused", Bool),
		Leaf("slew_active", Bool),
	}
}
